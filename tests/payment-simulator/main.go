// Имитатор платёжного провайдера: шифрует коллбэк об успешной оплате
// и шлёт его на /api/payment/notify, как это делает реальный провайдер.
// Повторная отправка того же номера проверяет идемпотентность движка.
package main

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
)

func main() {
	var (
		url    = flag.String("url", "http://localhost:8080/api/payment/notify", "callback endpoint")
		key    = flag.String("key", "0123456789abcdef0123456789abcdef", "APIv3 key, 32 bytes")
		number = flag.String("number", "", "order number (out_trade_no)")
		count  = flag.Int("count", 1, "how many times to send the callback")
	)
	flag.Parse()

	if *number == "" {
		log.Fatal("-number is required")
	}

	body, err := encrypt(*key, *number)
	if err != nil {
		log.Fatal("failed to encrypt callback:", err)
	}

	for i := 0; i < *count; i++ {
		resp, err := http.Post(*url, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatal("failed to send callback:", err)
		}
		ack, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		log.Printf("attempt %d: %d %s", i+1, resp.StatusCode, ack)
	}
}

func encrypt(key, number string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{
		"out_trade_no": number,
		"trade_state":  "SUCCESS",
	})
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	// Нонс — печатаемая строка: она едет в JSON как есть.
	letters := []byte("abcdefghijklmnopqrstuvwxyz0123456789")
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	for i := range nonce {
		nonce[i] = letters[int(nonce[i])%len(letters)]
	}

	ciphertext := gcm.Seal(nil, nonce, payload, []byte("transaction"))

	return json.Marshal(map[string]any{
		"resource": map[string]string{
			"ciphertext":      base64.StdEncoding.EncodeToString(ciphertext),
			"nonce":           string(nonce),
			"associated_data": "transaction",
		},
	})
}
