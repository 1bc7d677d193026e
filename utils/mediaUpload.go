package utils

import (
	"crypto/sha1"
	"elearn/config"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// UploadToCloudinary uploads any media file (image or video) and returns the
// hosted URL. Uses the signed upload API: the signature is SHA-1 over the
// sorted signed params followed by the API secret.
func UploadToCloudinary(file *multipart.FileHeader, folder string) (string, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", folder, timestamp, cfg.CloudinaryAPISecret)
	sum := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(sum[:])

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", cfg.CloudinaryCloudName)

	var result cloudinaryUploadResponse
	resp, err := resty.New().
		SetTimeout(30 * time.Second).
		R().
		SetFileReader("file", file.Filename, src).
		SetFormData(map[string]string{
			"api_key":   cfg.CloudinaryAPIKey,
			"timestamp": timestamp,
			"signature": signature,
			"folder":    folder,
		}).
		SetResult(&result).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %v", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("cloudinary upload rejected: %s", resp.Status())
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary response missing secure_url")
	}

	return result.SecureURL, nil
}
