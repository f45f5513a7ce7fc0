// README: Rental service input-validation tests (no database required).
package rental

import (
	"context"
	"errors"
	"testing"
	"time"
)

// The validation paths below reject the command before any store or pricing
// call, so a service with nil collaborators is safe here.
func TestCreateRejectsBadInput(t *testing.T) {
	svc := NewService(nil, nil, func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) })
	start := time.Date(2024, 5, 11, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		cmd     CreateCommand
		wantErr error
	}{
		{
			name:    "missing vehicle",
			cmd:     CreateCommand{CustomerID: "c1", StartAt: start, EndAt: start.Add(time.Hour)},
			wantErr: ErrBadRequest,
		},
		{
			name:    "missing customer",
			cmd:     CreateCommand{VehicleID: "v1", StartAt: start, EndAt: start.Add(time.Hour)},
			wantErr: ErrBadRequest,
		},
		{
			name:    "inverted window",
			cmd:     CreateCommand{VehicleID: "v1", CustomerID: "c1", StartAt: start, EndAt: start.Add(-time.Hour)},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "empty window",
			cmd:     CreateCommand{VehicleID: "v1", CustomerID: "c1", StartAt: start, EndAt: start},
			wantErr: ErrInvalidWindow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
