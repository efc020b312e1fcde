package remote

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/jonathan/talent-console/internal/schemas"
	"github.com/jonathan/talent-console/internal/types"
)

// UploadMeta carries the metadata fields accompanying a file upload.
type UploadMeta struct {
	Category    string
	Description string
	IsPublic    bool
}

// UploadFile uploads a validated local file and returns the created file
// record as an attachment reference. ownerType and ownerID associate the
// file with its owning entity on the backend.
func (c *Client) UploadFile(ctx context.Context, file *types.LocalFile, ownerType, ownerID string, meta UploadMeta) (*types.AttachmentRef, error) {
	const op = "uploadFile"

	if file == nil {
		return nil, &Error{Op: op, Message: "no file to upload"}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+file.Name+`"`)
	header.Set("Content-Type", file.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, &Error{Op: op, Message: "failed to build multipart body", Cause: err}
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, &Error{Op: op, Message: "failed to write file content", Cause: err}
	}

	fields := map[string]string{
		"owner_type":  ownerType,
		"owner_id":    ownerID,
		"category":    meta.Category,
		"description": meta.Description,
		"is_public":   strconv.FormatBool(meta.IsPublic),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, &Error{Op: op, Message: "failed to write form field", Cause: err}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &Error{Op: op, Message: "failed to finalize multipart body", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/files/upload", &buf)
	if err != nil {
		return nil, &Error{Op: op, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	env, err := c.decodeEnvelope(op, resp)
	if err != nil {
		return nil, err
	}

	var ref fileRecord
	if err := c.decodeData(op, schemas.SchemaFile, env, &ref); err != nil {
		return nil, err
	}
	return ref.attachmentRef(), nil
}

// fileRecord is the backend's file entity shape. The upload response keys
// differ slightly from the attachment pointer stored on resources, so it
// is decoded separately and converted.
type fileRecord struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
}

func (f fileRecord) attachmentRef() *types.AttachmentRef {
	return &types.AttachmentRef{
		FileID:       f.ID,
		Filename:     f.Filename,
		Path:         f.Path,
		OriginalName: f.OriginalName,
		Size:         f.Size,
		MimeType:     f.MimeType,
	}
}
