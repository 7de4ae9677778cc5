package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrankX3M/check-positions/decode"
)

// downloadDocument fetches an uploaded document and decodes it to text.
// The declared metadata is checked first so oversized uploads are rejected
// without a download; Decode re-checks both size and type.
func (b *Bot) downloadDocument(ctx context.Context, doc *tgbotapi.Document) (string, error) {
	if int64(doc.FileSize) > decode.MaxFileSize {
		return "", fmt.Errorf("%w: limit %d bytes, declared %d",
			decode.ErrFileTooLarge, int64(decode.MaxFileSize), doc.FileSize)
	}
	if mime := doc.MimeType; mime != "" && mime != "text/plain" && mime != "application/octet-stream" {
		return "", fmt.Errorf("%w: %q", decode.ErrUnsupportedType, mime)
	}

	fileURL, err := b.api.GetFileDirectURL(doc.FileID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, decode.MaxFileSize+1))
	if err != nil {
		return "", err
	}

	return decode.Decode(data, int64(doc.FileSize), doc.MimeType)
}
