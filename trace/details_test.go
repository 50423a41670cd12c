package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetailsString(t *testing.T) {
	for _, tt := range []struct {
		details Details
		exp     string
	}{
		{details: 0, exp: ""},
		{details: ListSortEvents, exp: "fwdlist.sort"},
		{details: ListSplitEvents | ListMergeEvents, exp: "fwdlist.merge|fwdlist.split"},
		{details: ListEvents, exp: "fwdlist.clear|fwdlist.merge|fwdlist.sort|fwdlist.split"},
	} {
		t.Run(tt.exp, func(t *testing.T) {
			require.Equal(t, tt.exp, tt.details.String())
		})
	}
}

func TestMatchDetails(t *testing.T) {
	for _, tt := range []struct {
		pattern string
		opts    []matchDetailsOption
		details Details
	}{
		{pattern: `^fwdlist\.sort$`, details: ListSortEvents},
		{pattern: `^fwdlist\.(split|merge)$`, details: ListSplitEvents | ListMergeEvents},
		{pattern: `^fwdlist\.`, details: ListEvents},
		{pattern: `^unknown$`, details: DetailsAll},
		{pattern: `^unknown$`, opts: []matchDetailsOption{WithDefaultDetails(ListSortEvents)}, details: ListSortEvents},
		{pattern: `(`, opts: []matchDetailsOption{WithDefaultDetails(0)}, details: 0},
		{pattern: `fwdlist.clear`, opts: []matchDetailsOption{WithPOSIXMatch()}, details: ListClearEvents},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			require.Equal(t, tt.details, MatchDetails(tt.pattern, tt.opts...))
		})
	}
}
