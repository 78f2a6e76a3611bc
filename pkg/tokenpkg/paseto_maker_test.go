package tokenpkg

import (
	"testing"
	"time"

	"github.com/go-petr/nexa-bank/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPasetoMaker(t *testing.T) {
	t.Parallel()

	secretKey := randompkg.String(32)

	maker, err := NewPasetoMaker(secretKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker(%v) returned error: %v", secretKey, err)
	}

	userID := randompkg.Intn(1000)
	username := randompkg.Owner()
	duration := time.Minute

	token, payload, err := maker.CreateToken(userID, username, false, duration)
	if err != nil {
		t.Errorf("maker.CreateToken(%v, %v, false, %v) returned error: %v", userID, username, duration, err)
	}

	_, err = maker.VerifyToken(token)
	if err != nil {
		t.Errorf("maker.VerifyToken(%v) returned error: %v", token, err)
	}

	want := &Payload{
		UserID:    userID,
		Username:  username,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}

	ignore := cmpopts.IgnoreFields(Payload{}, "ID")
	delta := cmpopts.EquateApproxTime(time.Minute)

	if diff := cmp.Diff(payload, want, ignore, delta); diff != "" {
		t.Errorf("maker.CreateToken(%v, %v, false, %v) returned unexpected diff: %v", userID, username, duration, diff)
	}
}

func TestPasetoMakerAdminFlag(t *testing.T) {
	t.Parallel()

	maker, err := NewPasetoMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("NewPasetoMaker returned error: %v", err)
	}

	token, _, err := maker.CreateToken(1, randompkg.Owner(), true, time.Minute)
	if err != nil {
		t.Fatalf("maker.CreateToken returned error: %v", err)
	}

	payload, err := maker.VerifyToken(token)
	if err != nil {
		t.Fatalf("maker.VerifyToken(%v) returned error: %v", token, err)
	}

	if !payload.IsAdmin {
		t.Errorf("payload.IsAdmin = false, want true")
	}
}

func TestExpiredPasetoToken(t *testing.T) {
	t.Parallel()

	secretKey := randompkg.String(32)

	maker, err := NewPasetoMaker(secretKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker(%v) returned error: %v", secretKey, err)
	}

	username := randompkg.Owner()
	duration := -time.Minute

	token, _, err := maker.CreateToken(1, username, false, duration)
	if err != nil {
		t.Errorf("maker.CreateToken(1, %v, false, %v) returned error: %v", username, duration, err)
	}

	_, err = maker.VerifyToken(token)
	if err != ErrExpiredToken {
		t.Errorf("maker.VerifyToken(%v) returned unexpected error: %v", token, err)
	}
}
