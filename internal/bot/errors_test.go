package bot

import (
	"errors"
	"testing"
)

func TestUserError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := UserErrorf("user did something wrong")
		if err.Message != "user did something wrong" {
			t.Errorf("unexpected message: %q", err.Message)
		}
		if err.Cause != nil {
			t.Error("expected no cause")
		}
		if err.Error() != "user did something wrong" {
			t.Errorf("expected Error() to return message, got %q", err.Error())
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("telegram unavailable")
		err := WrapUserError("failed to close poll", cause)
		if err.Error() != "failed to close poll: telegram unavailable" {
			t.Errorf("unexpected Error() result: %s", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("expected errors.Is to match cause")
		}
	})
}

func TestGetUserMessage(t *testing.T) {
	t.Run("with UserError", func(t *testing.T) {
		err := UserErrorf("friendly message")
		if got := GetUserMessage(err); got != "friendly message" {
			t.Errorf("expected 'friendly message', got %q", got)
		}
	})

	t.Run("with regular error", func(t *testing.T) {
		err := errors.New("database error")
		if got := GetUserMessage(err); got != MsgInternalError {
			t.Errorf("expected generic message, got %q", got)
		}
	})
}

func TestShouldLog(t *testing.T) {
	if ShouldLog(UserErrorf("user mistake")) {
		t.Error("user mistakes should not be logged")
	}
	if !ShouldLog(WrapUserError("failed", errors.New("boom"))) {
		t.Error("wrapped internal errors should be logged")
	}
	if !ShouldLog(errors.New("plain")) {
		t.Error("plain errors should be logged")
	}
}
