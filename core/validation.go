package core

import "fmt"

// ValidateRole validates a Role value.
func ValidateRole(role Role) error {
	switch role {
	case RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
}

// ValidateRecordKind validates a RecordKind value.
func ValidateRecordKind(kind RecordKind) error {
	switch kind {
	case KindProject, KindSkill, KindExperience, KindProfile, KindSocial:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRecordKind, kind)
	}
}

// ValidateChatMessage validates a ChatMessage according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Role must be user or assistant
//
// NOT validated:
//   - Timestamp (zero is valid; sessions stamp messages on append)
func ValidateChatMessage(msg ChatMessage) error {
	if msg.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, ErrEmptyContent)
	}
	if err := ValidateRole(msg.Role); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, err)
	}
	return nil
}
