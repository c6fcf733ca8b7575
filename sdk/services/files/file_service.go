// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"errors"

	"github.com/pride-archive/pride-cli-sdk/sdk/config"
)

// FTPRetriever is the FTP transport boundary; config.FTPClient satisfies it.
type FTPRetriever interface {
	RetrieveURI(ctx context.Context, uri, localPath string, hook *config.ProgressHook) error
}

// S3Retriever is the object-store transport boundary; config.S3Client
// satisfies it.
type S3Retriever interface {
	ListFilesAll(ctx context.Context, bucket, prefix string) ([]config.S3File, error)
	DownloadFile(ctx context.Context, bucket, key, localPath string) error
	DownloadFileWithProgress(ctx context.Context, bucket, key, localPath string, hook *config.ProgressHook) error
}

// FileService translates archive file queries into HTTP requests and the
// resulting JSON into local files.
type FileService struct {
	http config.ArchiveHTTP
	ftp  FTPRetriever
	s3   S3Retriever

	s3Bucket string

	// Quiet suppresses the per-transfer progress line.
	Quiet bool
}

func NewFileService(ctx context.Context, conf config.Config) (*FileService, error) {
	if conf.Archive.BaseURL == "" || conf.Archive.APIVersion == "" {
		return nil, errors.New("invalid archive config")
	}

	svc := &FileService{
		http: config.NewHTTPCore(nil, conf.Archive),
		ftp:  config.NewFTPClient(conf.FTP),
	}

	// The S3 path is optional; FTP and filesystem copy work without it.
	if conf.S3.EndpointURL != "" && conf.S3.Bucket != "" {
		s3c, err := config.NewS3Client(ctx, conf.S3)
		if err != nil {
			return nil, err
		}
		svc.s3 = s3c
		svc.s3Bucket = conf.S3.Bucket
	}

	return svc, nil
}
