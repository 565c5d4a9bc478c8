package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilvault/veilvault/models"
)

func Test_buildAnchorHistoryQuery_SQLContainsParts(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.AnchorHistoryFilter
		wantErr    bool
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: owner filter only",
			filter: models.AnchorHistoryFilter{OwnerAddress: "0xabc"},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "select")
				require.Contains(t, q, "from anchors")
				require.Contains(t, q, "where")
				require.Contains(t, q, "owner_address")
				require.Contains(t, q, "order by version desc")

				// Postgres placeholder
				require.Contains(t, query, "$1")

				// version filter and limit must NOT be added
				require.NotContains(t, q, "version >")
				require.NotContains(t, q, "limit")

				require.Len(t, args, 1)
				require.Equal(t, "0xabc", args[0])
			},
		},
		{
			name: "success: owner + since version",
			filter: models.AnchorHistoryFilter{
				OwnerAddress: "0xabc",
				SinceVersion: 7,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "version >")
				require.Contains(t, query, "$2")

				require.Len(t, args, 2)
				require.Equal(t, "0xabc", args[0])
				require.Equal(t, int64(7), args[1])
			},
		},
		{
			name: "success: owner + limit",
			filter: models.AnchorHistoryFilter{
				OwnerAddress: "0xabc",
				Limit:        10,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "limit 10")
				require.Len(t, args, 1)
			},
		},
		{
			name:    "error: missing owner address",
			filter:  models.AnchorHistoryFilter{SinceVersion: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildAnchorHistoryQuery(tt.filter)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrBuildingSQLQuery)
				assert.Empty(t, query)
				assert.Nil(t, args)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, query)
			assert.NotNil(t, args)

			if tt.checkQuery != nil {
				tt.checkQuery(t, query, args)
			}
		})
	}
}
