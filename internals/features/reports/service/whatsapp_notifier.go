package service

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sigapbanjar_backend/internals/configs"
)

const defaultGatewayURL = "https://api.fonnte.com/send"

// WhatsAppNotifier mengirim notifikasi laporan baru ke koordinator via
// gateway Fonnte. Fire-and-forget: gagal kirim hanya dicatat di log,
// tidak pernah di-retry dan tidak pernah sampai ke pelapor.
type WhatsAppNotifier struct {
	GatewayURL string
	Token      string
	Target     string
	Client     *http.Client
}

func NewWhatsAppNotifier() *WhatsAppNotifier {
	return &WhatsAppNotifier{
		GatewayURL: defaultGatewayURL,
		Token:      configs.FonnteToken,
		Target:     configs.FonnteTarget,
		Client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// SendFloodAlert mengirim pesan template berisi lokasi, tinggi air, dan
// kebutuhan. Mengembalikan true hanya bila gateway menjawab 200.
func (n *WhatsAppNotifier) SendFloodAlert(district string, heightCM int, needs []string) bool {
	if n.Token == "" || n.Target == "" {
		return false
	}

	kebutuhan := strings.Join(needs, ", ")
	if kebutuhan == "" {
		kebutuhan = "-"
	}
	pesan := fmt.Sprintf(
		"🚨 *LAPORAN BANJIR BARU*\n\n"+
			"📍 *Lokasi:* Kec. %s\n"+
			"📏 *Ketinggian Air:* %d cm\n"+
			"🆘 *Kebutuhan:* %s\n\n"+
			"Mohon segera tindak lanjuti melalui Dashboard SIGAP BANJAR.",
		district, heightCM, kebutuhan,
	)

	form := url.Values{}
	form.Set("target", n.Target)
	form.Set("message", pesan)

	req, err := http.NewRequest(http.MethodPost, n.GatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		log.Println("[ERROR] Notifikasi WA: request gagal dibuat:", err)
		return false
	}
	req.Header.Set("Authorization", n.Token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.Client.Do(req)
	if err != nil {
		log.Println("[ERROR] Notifikasi WA gagal terkirim:", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Notifikasi WA ditolak gateway (status %d)", resp.StatusCode)
		return false
	}
	return true
}
