package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, s string) []Record {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var out []Record
	require.NoError(t, dec.Decode(&out))
	return out
}

func TestRecordCheckedInOnlyBooleanTrue(t *testing.T) {
	recs := decodeRecords(t, `[
		{"_id":"1","checked_in":true},
		{"_id":"2","checked_in":false},
		{"_id":"3"},
		{"_id":"4","checked_in":"true"},
		{"_id":"5","checked_in":1}
	]`)
	var got []string
	for _, r := range recs {
		if r.CheckedIn() {
			got = append(got, r.Label(""))
		}
	}
	require.Equal(t, []string{"1"}, got)
}

func TestRecordLabelFallsBackToID(t *testing.T) {
	recs := decodeRecords(t, `[{"_id":7,"team_name":"Alpha"},{"_id":8}]`)
	require.Equal(t, "Alpha", recs[0].Label(Teams.DisplayName))
	require.Equal(t, "8", recs[1].Label(Teams.DisplayName))

	id, ok := recs[1].ID()
	require.True(t, ok)
	require.Equal(t, json.Number("8"), id)
}

func TestRecordMissingID(t *testing.T) {
	r := Record{"checked_in": true}
	_, ok := r.ID()
	require.False(t, ok)
	require.Equal(t, "<nil>", r.Label(Members.DisplayName))
}
