// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/jlaffaye/ftp"
)

const (
	anonymousUser     = "anonymous"
	defaultFTPTimeout = 60 * time.Second
)

// FTPClient retrieves files addressed by the ftp:// URIs the archive
// publishes in publicFileLocations. Connections are per-retrieval; the
// archive FTP frontend drops idle control connections aggressively, so
// keeping a session across a batch is not worth the bookkeeping.
type FTPClient struct {
	conf FTPConfig
}

func NewFTPClient(conf FTPConfig) *FTPClient {
	if conf.Username == "" {
		conf.Username = anonymousUser
		conf.Password = anonymousUser
	}
	if conf.Timeout == 0 {
		conf.Timeout = defaultFTPTimeout
	}
	return &FTPClient{conf: conf}
}

// RetrieveURI downloads a single ftp:// URI to localPath. A transfer that
// fails mid-stream leaves whatever was written; callers decide whether to
// clean up.
func (c *FTPClient) RetrieveURI(ctx context.Context, uri, localPath string, hook *ProgressHook) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid ftp uri %q: %w", uri, err)
	}
	if u.Scheme != "ftp" {
		return fmt.Errorf("unsupported scheme %q in %q", u.Scheme, uri)
	}

	addr := u.Host
	if u.Port() == "" {
		addr += ":21"
	}

	conn, err := ftp.Dial(addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(c.conf.Timeout),
	)
	if err != nil {
		return fmt.Errorf("ftp dial %s failed: %w", addr, err)
	}
	defer conn.Quit()

	if err := conn.Login(c.conf.Username, c.conf.Password); err != nil {
		return fmt.Errorf("ftp login failed: %w", err)
	}

	remote := u.Path

	// SIZE is optional server-side; a refusal just means no percentage.
	var total int64
	if size, serr := conn.FileSize(remote); serr == nil {
		total = size
	}
	if hook != nil && hook.OnStart != nil {
		hook.OnStart(remote, total)
	}

	resp, err := conn.Retr(remote)
	if err != nil {
		return fmt.Errorf("ftp retr %s failed: %w", remote, err)
	}
	defer resp.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file: %w", err)
	}
	defer f.Close()

	pw := &progressWriter{
		key:      remote,
		total:    total,
		interval: 250 * time.Millisecond,
	}
	if hook != nil {
		pw.onProgress = hook.OnProgress
	}

	start := time.Now()
	tee := io.TeeReader(resp, pw)
	if _, err := io.Copy(f, tee); err != nil {
		return fmt.Errorf("ftp transfer of %s failed: %w", remote, err)
	}

	if hook != nil && hook.OnDone != nil {
		hook.OnDone(remote, total, time.Since(start))
	}
	return nil
}
