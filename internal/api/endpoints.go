package api

import (
	"context"
	"net/url"
	"strconv"
)

// SystemStatus reports runtime information about the daemon process.
func (c *Client) SystemStatus(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/system/status", nil)
}

// SystemVersion reports the daemon's version information.
func (c *Client) SystemVersion(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/system/version", nil)
}

// Connections reports per-device connection state and transfer totals.
func (c *Client) Connections(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/system/connections", nil)
}

// SystemErrors lists errors the daemon has accumulated since the last clear.
func (c *Client) SystemErrors(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/system/error", nil)
}

// ClearErrors discards the daemon's accumulated error list.
func (c *Client) ClearErrors(ctx context.Context) (Value, error) {
	return c.post(ctx, "/rest/system/error/clear", nil, nil)
}

// Restart asks the daemon to restart itself.
func (c *Client) Restart(ctx context.Context) (Value, error) {
	return c.post(ctx, "/rest/system/restart", nil, nil)
}

// Shutdown asks the daemon to exit.
func (c *Client) Shutdown(ctx context.Context) (Value, error) {
	return c.post(ctx, "/rest/system/shutdown", nil, nil)
}

// Config returns the daemon's full configuration document.
func (c *Client) Config(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/config", nil)
}

// Folders lists the configured folders.
func (c *Client) Folders(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/config/folders", nil)
}

// Devices lists the configured devices.
func (c *Client) Devices(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/config/devices", nil)
}

// FolderStatus returns database state for a single folder.
func (c *Client) FolderStatus(ctx context.Context, folder string) (Value, error) {
	return c.get(ctx, "/rest/db/status", folderQuery(folder))
}

// Completion reports overall sync completion across the cluster.
func (c *Client) Completion(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/db/completion", nil)
}

// Need lists the items a folder still has to fetch.
func (c *Client) Need(ctx context.Context, folder string) (Value, error) {
	return c.get(ctx, "/rest/db/need", folderQuery(folder))
}

// Scan triggers a rescan of a single folder.
func (c *Client) Scan(ctx context.Context, folder string) (Value, error) {
	return c.post(ctx, "/rest/db/scan", folderQuery(folder), nil)
}

// ScanAll triggers a rescan of every folder.
func (c *Client) ScanAll(ctx context.Context) (Value, error) {
	return c.post(ctx, "/rest/db/scan", nil, nil)
}

// DeviceStats returns per-device statistics such as last-seen times.
func (c *Client) DeviceStats(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/stats/device", nil)
}

// FolderStats returns per-folder statistics such as last-scan times.
func (c *Client) FolderStats(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/stats/folder", nil)
}

// PendingDevices lists devices that want to connect but are not configured.
func (c *Client) PendingDevices(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/cluster/pending/devices", nil)
}

// PendingFolders lists folders offered by remote devices but not accepted.
func (c *Client) PendingFolders(ctx context.Context) (Value, error) {
	return c.get(ctx, "/rest/cluster/pending/folders", nil)
}

// FolderErrors lists the current pull errors for a folder.
func (c *Client) FolderErrors(ctx context.Context, folder string) (Value, error) {
	return c.get(ctx, "/rest/folder/errors", folderQuery(folder))
}

// Events returns entries from the daemon's event log. A zero since or limit
// leaves the corresponding query parameter unset.
func (c *Client) Events(ctx context.Context, since, limit int) (Value, error) {
	query := url.Values{}
	if since > 0 {
		query.Set("since", strconv.Itoa(since))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return c.get(ctx, "/rest/events", query)
}

func folderQuery(folder string) url.Values {
	return url.Values{"folder": []string{folder}}
}
