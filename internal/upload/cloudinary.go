package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader pushes images to Cloudinary's unsigned upload endpoint using a
// preset, returning the hosted URL. The unsigned flow carries no API
// secret, only the cloud name and preset identifier.
type Uploader struct {
	BaseURL   string // overridable for tests
	CloudName string
	Preset    string
	Client    *http.Client
}

func New(cloudName, preset string) *Uploader {
	return &Uploader{
		BaseURL:   "https://api.cloudinary.com/v1_1",
		CloudName: cloudName,
		Preset:    preset,
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

var ErrDisabled = errors.New("image upload is not configured")

func (u *Uploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if u.CloudName == "" {
		return "", ErrDisabled
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err == nil {
			_, err = io.Copy(part, file)
		}
		if err == nil {
			err = mw.WriteField("upload_preset", u.Preset)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	endpoint := fmt.Sprintf("%s/%s/image/upload", u.BaseURL, u.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload: status %d: %s", resp.StatusCode, string(b))
	}

	var out struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.SecureURL == "" {
		return "", errors.New("upload: response missing secure_url")
	}
	return out.SecureURL, nil
}
