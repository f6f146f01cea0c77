package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/briefing"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
)

var (
	t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	t1 = t0.Add(2 * time.Second)
)

func TestBegin(t *testing.T) {
	prior := []State{
		{},
		{Phase: Success, Domain: model.Privacy, Briefing: briefing.Briefing{Synthesis: "old"}, ID: "NX-1234"},
		{Phase: Failed, Domain: model.Industrial, Fallback: FallbackMessage},
	}
	for _, s := range prior {
		t.Run(s.Phase.String(), func(t *testing.T) {
			got, err := Begin(s, model.Cyber, t0)
			require.NoError(t, err)
			assert.Equal(t, State{Phase: Loading, Domain: model.Cyber, StartedAt: t0}, got)
		})
	}
}

func TestBegin_InFlight(t *testing.T) {
	loading := State{Phase: Loading, Domain: model.Corporate, StartedAt: t0}
	got, err := Begin(loading, model.Cyber, t1)
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, loading, got)
}

func TestComplete(t *testing.T) {
	loading := State{Phase: Loading, Domain: model.Cyber, StartedAt: t0}

	tests := []struct {
		name    string
		raw     string
		err     error
		phase   Phase
		synthesis string
	}{
		{name: "success", raw: "EXECUTIVE SYNTHESIS: S\nRISK CLUSTERS: R\nADVANTAGE MATRIX: M", phase: Success, synthesis: "S"},
		{name: "unlabelled text", raw: "free text", phase: Success},
		{name: "call error", raw: "EXECUTIVE SYNTHESIS: S", err: errors.New("boom"), phase: Failed},
		{name: "empty response", raw: "", phase: Failed},
		{name: "blank response", raw: " \n\t ", phase: Failed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Complete(loading, tt.raw, tt.err, t1)
			assert.Equal(t, tt.phase, got.Phase)
			assert.Equal(t, model.Cyber, got.Domain)
			assert.Equal(t, t0, got.StartedAt)
			assert.Equal(t, t1, got.FinishedAt)
			if tt.phase == Failed {
				assert.Equal(t, FallbackMessage, got.Fallback)
				assert.True(t, got.Briefing.Empty())
				return
			}
			assert.Empty(t, got.Fallback)
			assert.Equal(t, tt.synthesis, got.Briefing.Synthesis)
		})
	}
}

func TestComplete_NotLoading(t *testing.T) {
	for _, s := range []State{{}, {Phase: Success, ID: "NX-1000"}, {Phase: Failed, Fallback: FallbackMessage}} {
		assert.Equal(t, s, Complete(s, "EXECUTIVE SYNTHESIS: S", nil, t1))
	}
}

func TestPhase_Text(t *testing.T) {
	for _, p := range []Phase{Idle, Loading, Success, Failed} {
		b, err := p.MarshalText()
		require.NoError(t, err)

		var back Phase
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, p, back)
	}

	var p Phase
	assert.Error(t, p.UnmarshalText([]byte("pending")))
	assert.Equal(t, "phase(9)", Phase(9).String())
}
