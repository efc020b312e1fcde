package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/talent-console/internal/schemas"
	"github.com/jonathan/talent-console/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for backend requests.
const DefaultUserAgent = "TalentConsole/1.0"

// Options configures the client behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	APIToken  string
	Headers   map[string]string

	// ValidatePayloads enables JSON Schema validation of decoded
	// entity payloads. Off by default; a contract drift then surfaces
	// as a decode error instead of a silent zero value.
	ValidatePayloads bool
}

// DefaultOptions returns sensible defaults for backend calls.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client is the thin HTTP façade over the talent backend. It owns no
// state beyond connection configuration; callers hold the caches.
type Client struct {
	baseURL string
	opts    *Options
	httpc   *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{Op: "newClient", Message: fmt.Sprintf("invalid base URL %q", baseURL), Cause: err}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    opts,
		httpc:   &http.Client{Timeout: opts.Timeout},
	}, nil
}

// envelope is the uniform {success, data, message} wrapper every backend
// call returns. List endpoints carry pagination alongside data.
type envelope struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Message    string            `json:"message,omitempty"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}

// do executes one backend call and returns the decoded envelope. An
// envelope with success=false is returned as an error carrying the
// backend's message.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (*envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Op: op, Message: "failed to encode request body", Cause: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &Error{Op: op, Message: "failed to create request", Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	return c.decodeEnvelope(op, resp)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.opts.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIToken)
	}
	for key, value := range c.opts.Headers {
		req.Header.Set(key, value)
	}
}

func (c *Client) decodeEnvelope(op string, resp *http.Response) (*envelope, error) {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, Message: "failed to read response body", StatusCode: resp.StatusCode, Cause: err}
	}

	var env envelope
	if decodeErr := json.Unmarshal(bodyBytes, &env); decodeErr != nil {
		if resp.StatusCode >= 400 {
			return nil, &Error{Op: op, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode), StatusCode: resp.StatusCode}
		}
		return nil, &Error{Op: op, Message: "failed to decode response envelope", StatusCode: resp.StatusCode, Cause: decodeErr}
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = fmt.Sprintf("backend reported failure (HTTP %d)", resp.StatusCode)
		}
		return nil, &Error{Op: op, Message: message, StatusCode: resp.StatusCode}
	}

	return &env, nil
}

// decodeData unmarshals the envelope payload into out, optionally
// validating it against the named JSON schema first.
func (c *Client) decodeData(op, schemaName string, env *envelope, out any) error {
	if c.opts.ValidatePayloads && schemaName != "" {
		if err := schemas.Validate(schemaName, env.Data); err != nil {
			return &Error{Op: op, Message: "response payload failed schema validation", Cause: err}
		}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Op: op, Message: "failed to decode response data", Cause: err}
	}
	return nil
}

// ListParams holds pagination and filter parameters for list endpoints.
type ListParams struct {
	Page   int
	Limit  int
	Status string
	Search string
}

func (p ListParams) query() url.Values {
	query := url.Values{}
	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		query.Set("status", p.Status)
	}
	if p.Search != "" {
		query.Set("search", p.Search)
	}
	return query
}

// CreateResource creates a new resource record.
func (c *Client) CreateResource(ctx context.Context, payload types.ResourcePayload) (*types.Resource, error) {
	env, err := c.do(ctx, "createResource", http.MethodPost, "/api/resources", nil, payload)
	if err != nil {
		return nil, err
	}
	var res types.Resource
	if err := c.decodeData("createResource", schemas.SchemaResource, env, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateResource replaces the mutable fields of a resource record.
func (c *Client) UpdateResource(ctx context.Context, id string, payload types.ResourcePayload) (*types.Resource, error) {
	env, err := c.do(ctx, "updateResource", http.MethodPut, "/api/resources/"+id, nil, payload)
	if err != nil {
		return nil, err
	}
	var res types.Resource
	if err := c.decodeData("updateResource", schemas.SchemaResource, env, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PatchResourceAttachment updates only the attachment pointer of a
// resource. A nil ref serializes to an explicit {"attachment": null},
// which the backend treats as a clear.
func (c *Client) PatchResourceAttachment(ctx context.Context, id string, ref *types.AttachmentRef) (*types.Resource, error) {
	patch := map[string]any{"attachment": ref}
	env, err := c.do(ctx, "patchResourceAttachment", http.MethodPatch, "/api/resources/"+id, nil, patch)
	if err != nil {
		return nil, err
	}
	var res types.Resource
	if err := c.decodeData("patchResourceAttachment", schemas.SchemaResource, env, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetResource fetches one resource by id.
func (c *Client) GetResource(ctx context.Context, id string) (*types.Resource, error) {
	env, err := c.do(ctx, "getResource", http.MethodGet, "/api/resources/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var res types.Resource
	if err := c.decodeData("getResource", schemas.SchemaResource, env, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteResource removes a resource record.
func (c *Client) DeleteResource(ctx context.Context, id string) error {
	_, err := c.do(ctx, "deleteResource", http.MethodDelete, "/api/resources/"+id, nil, nil)
	return err
}

// ListResources fetches one page of resources.
func (c *Client) ListResources(ctx context.Context, params ListParams) ([]types.Resource, types.Pagination, error) {
	env, err := c.do(ctx, "listResources", http.MethodGet, "/api/resources", params.query(), nil)
	if err != nil {
		return nil, types.Pagination{}, err
	}
	var items []types.Resource
	if err := c.decodeData("listResources", "", env, &items); err != nil {
		return nil, types.Pagination{}, err
	}
	return items, paginationOf(env, params, len(items)), nil
}

// ListSkills fetches the full skills reference list.
func (c *Client) ListSkills(ctx context.Context) ([]types.Skill, error) {
	env, err := c.do(ctx, "listSkills", http.MethodGet, "/api/skills", nil, nil)
	if err != nil {
		return nil, err
	}
	var items []types.Skill
	if err := c.decodeData("listSkills", "", env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListCategories fetches the full categories reference list.
func (c *Client) ListCategories(ctx context.Context) ([]types.Category, error) {
	env, err := c.do(ctx, "listCategories", http.MethodGet, "/api/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	var items []types.Category
	if err := c.decodeData("listCategories", "", env, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SkillPayload is the write payload for skill create/update calls.
type SkillPayload struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateSkill adds a skill to the reference list.
func (c *Client) CreateSkill(ctx context.Context, payload SkillPayload) (*types.Skill, error) {
	env, err := c.do(ctx, "createSkill", http.MethodPost, "/api/skills", nil, payload)
	if err != nil {
		return nil, err
	}
	var skill types.Skill
	if err := c.decodeData("createSkill", "", env, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// UpdateSkill updates a skill in the reference list.
func (c *Client) UpdateSkill(ctx context.Context, id string, payload SkillPayload) (*types.Skill, error) {
	env, err := c.do(ctx, "updateSkill", http.MethodPut, "/api/skills/"+id, nil, payload)
	if err != nil {
		return nil, err
	}
	var skill types.Skill
	if err := c.decodeData("updateSkill", "", env, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// DeleteSkill removes a skill from the reference list.
func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	_, err := c.do(ctx, "deleteSkill", http.MethodDelete, "/api/skills/"+id, nil, nil)
	return err
}

// CategoryPayload is the write payload for category create calls.
type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateCategory adds a category to the reference list.
func (c *Client) CreateCategory(ctx context.Context, payload CategoryPayload) (*types.Category, error) {
	env, err := c.do(ctx, "createCategory", http.MethodPost, "/api/categories", nil, payload)
	if err != nil {
		return nil, err
	}
	var category types.Category
	if err := c.decodeData("createCategory", "", env, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListVendorSkills fetches one page of vendor-submitted skills.
func (c *Client) ListVendorSkills(ctx context.Context, params ListParams) ([]types.VendorSkill, types.Pagination, error) {
	env, err := c.do(ctx, "listVendorSkills", http.MethodGet, "/api/vendor-skills", params.query(), nil)
	if err != nil {
		return nil, types.Pagination{}, err
	}
	var items []types.VendorSkill
	if err := c.decodeData("listVendorSkills", "", env, &items); err != nil {
		return nil, types.Pagination{}, err
	}
	return items, paginationOf(env, params, len(items)), nil
}

// ApproveVendorSkill approves a pending vendor skill.
func (c *Client) ApproveVendorSkill(ctx context.Context, id string) (*types.VendorSkill, error) {
	env, err := c.do(ctx, "approveVendorSkill", http.MethodPost, "/api/vendor-skills/"+id+"/approve", nil, nil)
	if err != nil {
		return nil, err
	}
	var skill types.VendorSkill
	if err := c.decodeData("approveVendorSkill", "", env, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// RejectVendorSkill rejects a pending vendor skill with a reason.
func (c *Client) RejectVendorSkill(ctx context.Context, id, reason string) (*types.VendorSkill, error) {
	body := map[string]string{"reason": reason}
	env, err := c.do(ctx, "rejectVendorSkill", http.MethodPost, "/api/vendor-skills/"+id+"/reject", nil, body)
	if err != nil {
		return nil, err
	}
	var skill types.VendorSkill
	if err := c.decodeData("rejectVendorSkill", "", env, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// DeleteVendorSkill removes a vendor skill entry.
func (c *Client) DeleteVendorSkill(ctx context.Context, id string) error {
	_, err := c.do(ctx, "deleteVendorSkill", http.MethodDelete, "/api/vendor-skills/"+id, nil, nil)
	return err
}

// paginationOf returns the envelope's pagination block, or a single-page
// fallback derived from the request when the backend omits it.
func paginationOf(env *envelope, params ListParams, count int) types.Pagination {
	if env.Pagination != nil {
		return *env.Pagination
	}
	page := params.Page
	if page == 0 {
		page = 1
	}
	limit := params.Limit
	if limit == 0 {
		limit = count
	}
	return types.Pagination{Page: page, Limit: limit, Total: count, TotalPages: 1}
}
