package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{name: "default", profile: DefaultProfile},
		{name: "themed", profile: CtrlCat},
		{name: "missing name", profile: Profile{JoinText: "{user} is here"}, wantErr: true},
		{name: "name too long", profile: Profile{Name: strings.Repeat("x", 65)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProfile_Messages(t *testing.T) {
	req := require.New(t)

	req.Equal("Alice joined chat room: DefaultRoom", DefaultProfile.JoinMessage("Alice", 1))
	req.Equal("Bob left chat room: DefaultRoom", DefaultProfile.LeaveMessage("Bob", 0))
	req.Empty(DefaultProfile.CensusMessage(3))
	req.Equal("Dogorithm pack now has 2 coding companions.", Dogorithm.CensusMessage(2))
}

func TestValidateDisplayName(t *testing.T) {
	req := require.New(t)
	req.NoError(ValidateDisplayName("Rachel"))
	req.Error(ValidateDisplayName(""))
}
