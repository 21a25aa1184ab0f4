package service

import (
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/datatypes"

	"checkinku_backend/internals/configs"
	"checkinku_backend/internals/helpers/storage"
)

const (
	qrDirectory = "qrcodes"
	qrSize      = 300
	qrThumbSize = 150
)

// QRResult hasil generate QR untuk satu event.
type QRResult struct {
	URL  string
	Meta datatypes.JSON
}

// GenerateEventQR membuat PNG QR yang menunjuk ke halaman check-in publik
// event, menyimpannya ke storage, lalu mengembalikan URL file + metadata.
// Thumbnail best-effort: gagal thumbnail tidak menggagalkan QR utama.
// eventDeepLink URL halaman check-in publik sebuah event; ini yang
// di-encode ke QR dan dikembalikan sebagai event_url saat create.
func eventDeepLink(eventID string) string {
	return fmt.Sprintf("%s/event/%s", configs.BaseURL, eventID)
}

func GenerateEventQR(eventID string) (*QRResult, error) {
	deepLink := eventDeepLink(eventID)

	png, err := qrcode.Encode(deepLink, qrcode.Highest, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode qrcode: %w", err)
	}

	fileName := fmt.Sprintf("event_qr_%s.png", eventID)
	url, err := storage.SaveFile(qrDirectory, fileName, png)
	if err != nil {
		return nil, fmt.Errorf("save qrcode: %w", err)
	}

	meta := map[string]interface{}{
		"file":         fileName,
		"width":        qrSize,
		"format":       "png",
		"deep_link":    deepLink,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}

	// varian webp lebih kecil untuk embed di halaman check-in
	if webpData, werr := storage.EncodeWebP(png); werr == nil {
		webpName := fmt.Sprintf("event_qr_%s.webp", eventID)
		if _, serr := storage.SaveFile(qrDirectory, webpName, webpData); serr == nil {
			meta["webp_file"] = webpName
		} else {
			log.Printf("⚠️ Gagal simpan webp QR %s: %v", eventID, serr)
		}
	} else {
		log.Printf("⚠️ Gagal encode webp QR %s: %v", eventID, werr)
	}

	if thumb, terr := storage.Thumbnail(png, qrThumbSize); terr == nil {
		thumbName := fmt.Sprintf("event_qr_%s_thumb.png", eventID)
		if _, serr := storage.SaveFile(qrDirectory, thumbName, thumb); serr == nil {
			meta["thumb_file"] = thumbName
		} else {
			log.Printf("⚠️ Gagal simpan thumbnail QR %s: %v", eventID, serr)
		}
	} else {
		log.Printf("⚠️ Gagal buat thumbnail QR %s: %v", eventID, terr)
	}

	raw, err := sonic.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal qr meta: %w", err)
	}

	return &QRResult{URL: url, Meta: datatypes.JSON(raw)}, nil
}

// DeleteEventQRAssets menghapus file QR (dan thumbnail) milik event.
// Best-effort, dipakai saat event dihapus.
func DeleteEventQRAssets(eventID string) {
	urls := []string{
		fmt.Sprintf("/files/%s/event_qr_%s.png", qrDirectory, eventID),
		fmt.Sprintf("/files/%s/event_qr_%s.webp", qrDirectory, eventID),
		fmt.Sprintf("/files/%s/event_qr_%s_thumb.png", qrDirectory, eventID),
	}
	for _, u := range urls {
		if err := storage.DeleteFile(u); err != nil {
			log.Printf("⚠️ Gagal hapus asset QR %s: %v", u, err)
		}
	}
}
