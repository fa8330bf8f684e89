//go:build unit

package cmd_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"hotel-management-api/cmd/hotelctl/cmd"
	"hotel-management-api/internal/domain/roomrate"
	resdto "hotel-management-api/internal/handler/dto/response"
	"hotel-management-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runQuote(t *testing.T, args ...string) (*resdto.PriceBreakdownResponse, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"quote"}, args...))

	if err := root.Execute(); err != nil {
		return nil, err
	}
	var resp resdto.PriceBreakdownResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	return &resp, nil
}

func TestQuote(t *testing.T) {
	t.Run("weekday stay with a child and late check-out", func(t *testing.T) {
		resp, err := runQuote(t,
			"--check-in", "2024-01-01", "--check-out", "2024-01-03",
			"--weekday", "100", "--children-ages", "10",
			"--check-in-time", "14:00", "--check-out-time", "11:00",
		)
		require.NoError(t, err)

		assert.Equal(t, 2, resp.Nights)
		assert.Equal(t, "200.00", resp.RoomPrice)
		assert.Equal(t, "40.00", resp.ChildrenBedPrice)
		assert.Equal(t, "30.00", resp.ChildrenBreakfastPrice)
		assert.Equal(t, "0.00", resp.EarlyCheckInCharge)
		assert.Equal(t, "50.00", resp.LateCheckOutCharge)
		assert.Equal(t, "320.00", resp.TotalPrice)
	})

	t.Run("stay across a weekend bills each day at its class", func(t *testing.T) {
		// Fri 5th, Sat 6th, Sun 7th
		resp, err := runQuote(t,
			"--check-in", "2024-01-05", "--check-out", "2024-01-08",
			"--weekday", "100", "--weekend", "150", "--check-out-time", "10:00",
		)
		require.NoError(t, err)
		assert.Equal(t, "400.00", resp.RoomPrice)
		assert.Equal(t, "400.00", resp.TotalPrice)
	})

	t.Run("legacy policy bills the weekday rate for every night", func(t *testing.T) {
		resp, err := runQuote(t,
			"--check-in", "2024-01-05", "--check-out", "2024-01-08",
			"--weekday", "100", "--weekend", "150", "--check-out-time", "10:00",
			"--policy", "legacy_flat_rate",
		)
		require.NoError(t, err)
		assert.Equal(t, "300.00", resp.RoomPrice)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		cases := map[string][]string{
			"missing dates":  {"--weekday", "100"},
			"unknown hotel":  {"--check-in", "2024-01-01", "--check-out", "2024-01-02", "--hotel", "atlantis"},
			"bad date":       {"--check-in", "01/01/2024", "--check-out", "2024-01-02"},
			"bad rate":       {"--check-in", "2024-01-01", "--check-out", "2024-01-02", "--weekday", "cheap"},
			"unknown policy": {"--check-in", "2024-01-01", "--check-out", "2024-01-02", "--policy", "surge"},
		}
		for name, args := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := runQuote(t, args...)
				assert.Error(t, err)
			})
		}
	})

	t.Run("rejects a negative rate", func(t *testing.T) {
		for _, flag := range []string{"--weekday", "--weekend"} {
			t.Run(flag, func(t *testing.T) {
				_, err := runQuote(t, "--check-in", "2024-01-05", "--check-out", "2024-01-08", flag+"=-10")
				require.Error(t, err)
				assert.True(t, errs.Is(err, roomrate.ErrNegativePrice), "got %v", err)
			})
		}
	})
}
