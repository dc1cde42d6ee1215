package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/doulovera/proyx-app/pkg/errors"
)

func TestLoadable_StartsIdle(t *testing.T) {
	l := NewLoadable[[]string]()

	st := l.State()
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.False(t, st.HasData)
	assert.False(t, st.IsLoading())
	assert.Empty(t, st.ErrorMessage)
}

func TestLoadable_RunSuccessReplacesData(t *testing.T) {
	l := NewLoadable[[]string]()

	require.NoError(t, l.Run(context.Background(), func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	}))
	require.NoError(t, l.Run(context.Background(), func(context.Context) ([]string, error) {
		return []string{"c"}, nil
	}))

	st := l.State()
	assert.Equal(t, PhaseLoaded, st.Phase)
	assert.True(t, st.HasData)
	assert.Equal(t, []string{"c"}, st.Data)
}

func TestLoadable_IsLoadingDuringFetch(t *testing.T) {
	l := NewLoadable[int]()

	_ = l.Run(context.Background(), func(context.Context) (int, error) {
		assert.True(t, l.State().IsLoading())
		return 1, nil
	})
	assert.False(t, l.State().IsLoading())
}

func TestLoadable_FailureKeepsPreviousData(t *testing.T) {
	l := NewLoadable[[]string]()
	require.NoError(t, l.Run(context.Background(), func(context.Context) ([]string, error) {
		return []string{"kept"}, nil
	}))

	failure := apperrors.NetworkMessage("the server is unavailable")
	err := l.Run(context.Background(), func(context.Context) ([]string, error) {
		return nil, failure
	})

	require.ErrorIs(t, err, apperrors.ErrNetwork)
	st := l.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.True(t, st.HasData)
	assert.Equal(t, []string{"kept"}, st.Data)
	assert.Equal(t, "the server is unavailable", st.ErrorMessage)
}

func TestLoadable_NextRunClearsError(t *testing.T) {
	l := NewLoadable[int]()
	l.Fail(errors.New("boom"))
	assert.Equal(t, "something went wrong, please try again", l.State().ErrorMessage)

	require.NoError(t, l.Run(context.Background(), func(context.Context) (int, error) { return 3, nil }))
	st := l.State()
	assert.Nil(t, st.Err)
	assert.Empty(t, st.ErrorMessage)
	assert.Equal(t, 3, st.Data)
}

func TestLoadable_Reset(t *testing.T) {
	l := NewLoadable[int]()
	require.NoError(t, l.Run(context.Background(), func(context.Context) (int, error) { return 3, nil }))

	l.Reset()
	assert.Equal(t, State[int]{}, l.State())
}

func TestLoadable_SubscribeSeesFinalState(t *testing.T) {
	l := NewLoadable[int]()
	ch, cancel := l.Subscribe()
	defer cancel()

	assert.Equal(t, PhaseIdle, (<-ch).Phase)

	require.NoError(t, l.Run(context.Background(), func(context.Context) (int, error) { return 9, nil }))

	var last State[int]
	for st := range ch {
		last = st
		if st.Phase == PhaseLoaded {
			break
		}
	}
	assert.Equal(t, 9, last.Data)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "loaded", PhaseLoaded.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
