package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"
)

const testSecret = "whsec_test_secret"

func signPayload(t *testing.T, payload []byte, ts time.Time, secret string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestConstructEvent(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"customer.subscription.created","data":{"object":{"id":"sub_1","customer":"cus_1","status":"active"}}}`)
	now := time.Now()

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{
			name:   "valid signature",
			header: signPayload(t, payload, now, testSecret),
		},
		{
			name:    "wrong secret",
			header:  signPayload(t, payload, now, "whsec_other"),
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "stale timestamp",
			header:  signPayload(t, payload, now.Add(-10*time.Minute), testSecret),
			wantErr: ErrStaleTimestamp,
		},
		{
			name:    "missing timestamp",
			header:  "v1=deadbeef",
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "missing signature",
			header:  fmt.Sprintf("t=%d", now.Unix()),
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "garbage header",
			header:  "not a signature",
			wantErr: ErrInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := constructEventAt(payload, tt.header, testSecret, now, DefaultWebhookTolerance)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("constructEventAt() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if ev.Type != "customer.subscription.created" {
				t.Errorf("event type = %q", ev.Type)
			}
			sub, err := ev.Subscription()
			if err != nil {
				t.Fatalf("Subscription() error = %v", err)
			}
			if sub.ID != "sub_1" || sub.Customer != "cus_1" || sub.Status != "active" {
				t.Errorf("subscription = %+v", sub)
			}
		})
	}
}

func TestConstructEventMultipleSignatures(t *testing.T) {
	payload := []byte(`{"id":"evt_2","type":"customer.subscription.deleted","data":{"object":{"id":"sub_2","customer":"cus_2","status":"canceled"}}}`)
	now := time.Now()

	mac := hmac.New(sha256.New, []byte(testSecret))
	fmt.Fprintf(mac, "%d.%s", now.Unix(), payload)
	good := hex.EncodeToString(mac.Sum(nil))

	// A rotated-secret header carries one stale and one valid v1 entry.
	header := fmt.Sprintf("t=%d,v1=%s,v1=%s", now.Unix(), "00ff00ff", good)

	ev, err := constructEventAt(payload, header, testSecret, now, DefaultWebhookTolerance)
	if err != nil {
		t.Fatalf("constructEventAt() error = %v", err)
	}
	if ev.Type != "customer.subscription.deleted" {
		t.Errorf("event type = %q", ev.Type)
	}
}
