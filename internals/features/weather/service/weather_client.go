package service

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"sigapbanjar_backend/internals/configs"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// Observation hasil pantauan cuaca. Field nil berarti data tidak tersedia.
type Observation struct {
	TempC     *float64
	Condition *string
	Humidity  *int
	RainMM    *float64
}

// WeatherClient mengambil kondisi cuaca per nama kota/kecamatan.
// Non-200 atau field yang hilang diperlakukan sebagai "tidak ada data",
// bukan error: dashboard tetap jalan tanpa cuaca.
type WeatherClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewWeatherClient() *WeatherClient {
	return &WeatherClient{
		BaseURL: defaultBaseURL,
		APIKey:  configs.WeatherAPIKey,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type currentPayload struct {
	Current struct {
		TempC     *float64 `json:"temp_c"`
		Condition struct {
			Text *string `json:"text"`
		} `json:"condition"`
		Humidity *int     `json:"humidity"`
		PrecipMM *float64 `json:"precip_mm"`
	} `json:"current"`
}

// Fetch mengambil kondisi terkini untuk satu kota. ok=false berarti tidak
// ada data (API mati, key salah, kota tidak dikenal) dan bukan kondisi error.
func (w *WeatherClient) Fetch(city string) (Observation, bool) {
	if w.APIKey == "" {
		return Observation{}, false
	}

	endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s", w.BaseURL, url.QueryEscape(w.APIKey), url.QueryEscape(city))
	resp, err := w.Client.Get(endpoint)
	if err != nil {
		log.Println("[ERROR] Lookup cuaca gagal:", err)
		return Observation{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] API cuaca menjawab status %d untuk %s", resp.StatusCode, city)
		return Observation{}, false
	}

	var payload currentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Println("[ERROR] Gagal decode response cuaca:", err)
		return Observation{}, false
	}

	return Observation{
		TempC:     payload.Current.TempC,
		Condition: payload.Current.Condition.Text,
		Humidity:  payload.Current.Humidity,
		RainMM:    payload.Current.PrecipMM,
	}, true
}
