package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

func TestDisplayedWinner(t *testing.T) {
	tests := []struct {
		human, service, want entity.Mark
	}{
		{human: entity.PlayerX, service: entity.PlayerX, want: entity.PlayerX},
		{human: entity.PlayerX, service: entity.PlayerO, want: entity.PlayerO},
		{human: entity.PlayerO, service: entity.PlayerX, want: entity.PlayerO},
		{human: entity.PlayerO, service: entity.PlayerO, want: entity.PlayerX},
	}

	for _, tt := range tests {
		t.Run("human "+string(tt.human)+" service "+string(tt.service), func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayedWinner(tt.human, tt.service))
		})
	}
}
