package core

import (
	"errors"
	"testing"
)

func TestValidateChatMessage(t *testing.T) {
	tests := []struct {
		name    string
		msg     ChatMessage
		wantErr error
	}{
		{
			name:    "valid user message",
			msg:     ChatMessage{Role: RoleUser, Content: "Hello"},
			wantErr: nil,
		},
		{
			name:    "valid assistant message",
			msg:     ChatMessage{Role: RoleAssistant, Content: "Hi there"},
			wantErr: nil,
		},
		{
			name:    "empty content",
			msg:     ChatMessage{Role: RoleUser, Content: ""},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "unknown role",
			msg:     ChatMessage{Role: Role("system"), Content: "preamble"},
			wantErr: ErrInvalidRole,
		},
		{
			name:    "missing role",
			msg:     ChatMessage{Content: "orphan"},
			wantErr: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChatMessage(tt.msg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateChatMessage() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidChatMessage) {
				t.Errorf("ValidateChatMessage() error = %v, want wrapped ErrInvalidChatMessage", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateChatMessage() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRecordKind(t *testing.T) {
	for _, kind := range []RecordKind{KindProject, KindSkill, KindExperience, KindProfile, KindSocial} {
		if err := ValidateRecordKind(kind); err != nil {
			t.Errorf("ValidateRecordKind(%q) = %v, want nil", kind, err)
		}
	}
	if err := ValidateRecordKind(RecordKind("widget")); !errors.Is(err, ErrInvalidRecordKind) {
		t.Errorf("ValidateRecordKind(widget) = %v, want ErrInvalidRecordKind", err)
	}
}
