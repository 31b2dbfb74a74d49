package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignedTemplateIDs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "duplicates collapse",
			raw: `{"ops":[
				{"insert":"a","attributes":{"td":"tbl1|row1|cell1||template1"}},
				{"insert":"b","attributes":{"td":"tbl1|row1|cell2||template3"}},
				{"insert":"c","attributes":{"td":"tbl1|row2|cell3||template1"}},
				{"insert":"\n"}
			]}`,
			want: []string{"template1", "template3"},
		},
		{
			name: "bare ops array and table attribute",
			raw:  `[{"insert":"x","attributes":{"tableTemplate":"striped"}},{"insert":"y","attributes":{"td":"t|r|c|m|striped"}}]`,
			want: []string{"striped"},
		},
		{
			name: "invalid and missing ids are ignored",
			raw: `{"ops":[
				{"insert":"a","attributes":{"td":"tbl1|row1|cell1"}},
				{"insert":"b","attributes":{"td":"tbl1|row1|cell1||9bad"}},
				{"insert":"c","attributes":{"td":42,"tableTemplate":""}},
				{"insert":"d","attributes":{"bold":true}}
			]}`,
			want: []string{},
		},
		{
			name: "empty input",
			raw:  "  ",
			want: []string{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ids, err := AssignedTemplateIDs([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestAssignedTemplateIDsRejectsMalformedJSON(t *testing.T) {
	_, err := AssignedTemplateIDs([]byte(`{"ops": [`))
	require.Error(t, err)
}
