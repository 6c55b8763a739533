package downloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageState(t *testing.T) {
	tests := []struct {
		name string
		pkg  jdPackage
		want State
	}{
		{name: "finished", pkg: jdPackage{Finished: true}, want: StateFinished},
		{name: "error status", pkg: jdPackage{Status: "ERROR: connection lost"}, want: StateFailed},
		{name: "failed status", pkg: jdPackage{Status: "download failed"}, want: StateFailed},
		{name: "downloading", pkg: jdPackage{BytesLoaded: 10}, want: StateDownloading},
		{name: "queued", pkg: jdPackage{}, want: StateQueued},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, packageState(tt.pkg))
		})
	}
}
