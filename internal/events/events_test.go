package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/models"
)

type recordingReporter struct{ got []Event }

func (r *recordingReporter) Report(ev Event) { r.got = append(r.got, ev) }

// ── Desired ──────────────────────────────────────────────────────────────────

func TestParseDesired(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    Desired
		wantErr bool
	}{
		{name: "empty", input: nil, want: DesiredNone},
		{name: "single", input: []string{"willStartDownloads"}, want: DesiredOf(KindWillStartDownloads)},
		{name: "case insensitive and blanks", input: []string{" HaveSharingGroupIds ", ""}, want: DesiredOf(KindHaveSharingGroupIDs)},
		{name: "all", input: []string{"willStartUploads", "all"}, want: DesiredAll},
		{name: "unknown", input: []string{"somethingElse"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDesired(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDesiredAll_HasEveryKind(t *testing.T) {
	for k := range kindNames {
		assert.True(t, DesiredAll.Has(k), k.String())
		assert.False(t, DesiredNone.Has(k), k.String())
	}
}

// ── Report ───────────────────────────────────────────────────────────────────

func TestReport_Filters(t *testing.T) {
	rec := &recordingReporter{}
	desired := DesiredOf(KindWillStartDownloads)

	Report(WillStartDownloads(2, 1), desired, rec)
	Report(WillStartUploads(3), desired, rec)
	Report(HaveSharingGroupIDs([]models.SharingGroupID{1}), desired, nil)

	require.Len(t, rec.got, 1)
	assert.Equal(t, 2, rec.got[0].NumberContentDownloads)
	assert.Equal(t, 1, rec.got[0].NumberDownloadDeletions)
}

func TestChannelReporter_NeverBlocks(t *testing.T) {
	r := NewChannelReporter(1)

	r.Report(WillStartUploads(1))
	r.Report(WillStartUploads(2))
	r.Report(WillStartUploads(3))

	assert.Equal(t, int64(2), r.Dropped())
	ev := <-r.Events()
	assert.Equal(t, 1, ev.NumberUploads)
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &recordingReporter{}, &recordingReporter{}
	m := Multi{a, nil, b, NewLogReporter(logger.Nop())}

	m.Report(MasterVersionChanged(1, 9))

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, models.MasterVersion(9), b.got[0].MasterVersion)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "singleFileDownloadComplete", KindSingleFileDownloadComplete.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
