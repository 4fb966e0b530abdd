// internals/features/finance/notifier/sms_sender.go
package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"lesku_backend/internals/configs"
)

// Sender mengirim satu pesan SMS-like ke satu nomor. Implementasi gateway
// dibungkus interface supaya step notifikasi bisa dites dengan fake.
type Sender interface {
	Send(phone, message string) error
}

// NewFromEnv memilih implementasi: gateway HTTP kalau ENV lengkap,
// kalau tidak fallback ke log-only (pola yang sama dengan reaper OSS:
// ENV tidak lengkap → skip, jangan matikan service).
func NewFromEnv() Sender {
	url := configs.GetEnv("SMS_GATEWAY_URL")
	key := configs.GetEnv("SMS_API_KEY")
	if url == "" || key == "" {
		log.Println("⚠️ ENV SMS_* tidak lengkap — notifikasi hanya dicatat ke log")
		return &LogSender{}
	}
	return &HTTPSender{
		GatewayURL: url,
		APIKey:     key,
		SenderID:   configs.GetEnv("SMS_SENDER_ID", "LESKU"),
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// HTTPSender: POST JSON ke gateway SMS pihak ketiga.
type HTTPSender struct {
	GatewayURL string
	APIKey     string
	SenderID   string
	Client     *http.Client
}

func (s *HTTPSender) Send(phone, message string) error {
	payload, err := json.Marshal(map[string]string{
		"sender_id": s.SenderID,
		"to":        phone,
		"message":   message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sms gateway status %d", resp.StatusCode)
	}
	return nil
}

// LogSender: dev/test fallback, tidak kirim apa-apa.
type LogSender struct{}

func (s *LogSender) Send(phone, message string) error {
	log.Printf("[SMS:DRY] to=%s msg=%q", phone, message)
	return nil
}
