package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pv-speicher/internal/data"
	"pv-speicher/internal/model"
)

type failingPV struct{}

func (failingPV) HourlyRows(context.Context) ([]model.RawRow, error) {
	return nil, errors.New("upstream unavailable")
}

func TestBuild(t *testing.T) {
	rows := make([]model.RawRow, model.HoursPerYear)
	for i := range rows {
		rows[i].PowerWatts = 500
	}

	s, err := Build(context.Background(), data.StaticLoadProfile(flatWeights()), data.StaticPV(rows), 4000)
	require.NoError(t, err)
	assert.InDelta(t, 4000, s.Load.Sum(), 1e-6)
	assert.InDelta(t, 0.5*model.HoursPerYear, s.PV.Sum(), 1e-6)
}

func TestBuild_WrapsSourceErrors(t *testing.T) {
	_, err := Build(context.Background(), data.StaticLoadProfile(flatWeights()[:10]), data.StaticPV(nil), 4000)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "load profile")

	_, err = Build(context.Background(), data.StaticLoadProfile(flatWeights()), failingPV{}, 4000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pv production: upstream unavailable")
}
