package s3client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "imagefetch/config"
	"imagefetch/internal/models"
	"imagefetch/pkg/utils"
)

type Client struct {
	s3Client *s3.Client
	config   *appConfig.Config
}

func New(cfg *appConfig.Config) (*Client, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is not configured")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	if cfg.ApiURL != "" {
		s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
			o.UsePathStyle = true
		})
	} else {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	return &Client{
		s3Client: s3Client,
		config:   cfg,
	}, nil
}

// UploadDirectory mirrors the downloaded images in dir to the bucket under
// destinationPath, either file by file or as a single zip archive.
func (c *Client) UploadDirectory(ctx context.Context, dir, destinationPath string, shouldArchive bool) (*models.UploadResult, error) {
	startTime := time.Now()

	if err := utils.ValidateDir(dir); err != nil {
		return nil, fmt.Errorf("path validation failed: %w", err)
	}

	var uploadItems []models.UploadItem
	var totalSize int64

	uploader := manager.NewUploader(c.s3Client)

	if shouldArchive {
		archivePath := filepath.Join(os.TempDir(), utils.GenerateArchiveName(dir))
		defer utils.CleanupTempFile(archivePath)

		archiveInfo, err := utils.CreateArchive(dir, archivePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive: %w", err)
		}

		remotePath := buildRemotePath(destinationPath, filepath.Base(archivePath))
		if err := c.uploadSingleFile(ctx, uploader, archivePath, remotePath); err != nil {
			return nil, fmt.Errorf("failed to upload archive: %w", err)
		}

		uploadItems = append(uploadItems, models.UploadItem{
			LocalPath:  dir,
			RemotePath: remotePath,
			Size:       archiveInfo.CompressedSize,
			IsArchived: true,
		})
		totalSize = archiveInfo.CompressedSize
	} else {
		files, err := utils.ListFiles(dir)
		if err != nil {
			return nil, err
		}

		for _, path := range files {
			info, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", path, err)
			}

			remotePath := buildRemotePath(destinationPath, filepath.Base(path))
			if err := c.uploadSingleFile(ctx, uploader, path, remotePath); err != nil {
				return nil, fmt.Errorf("failed to upload %s: %w", path, err)
			}

			uploadItems = append(uploadItems, models.UploadItem{
				LocalPath:  path,
				RemotePath: remotePath,
				Size:       info.Size(),
			})
			totalSize += info.Size()
		}
	}

	return &models.UploadResult{
		BucketName:      c.config.BucketName,
		SourceDir:       dir,
		DestinationPath: destinationPath,
		Items:           uploadItems,
		TotalFiles:      len(uploadItems),
		TotalSizeBytes:  totalSize,
		TotalSizeHuman:  utils.FormatBytes(totalSize),
		OperationTime:   utils.FormatTime(startTime),
		ArchiveCreated:  shouldArchive,
		UploadDuration:  time.Since(startTime).String(),
	}, nil
}

func (c *Client) uploadSingleFile(ctx context.Context, uploader *manager.Uploader, localPath, remotePath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", localPath, err)
	}
	defer file.Close()

	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.config.BucketName),
		Key:         aws.String(remotePath),
		Body:        file,
		ContentType: aws.String(detectContentType(localPath)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

func buildRemotePath(destinationPath, filename string) string {
	destinationPath = strings.Trim(destinationPath, "/")
	if destinationPath == "" {
		return filename
	}
	return destinationPath + "/" + filename
}

var contentTypes = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".zip":  "application/zip",
}

func detectContentType(filename string) string {
	if contentType, exists := contentTypes[strings.ToLower(filepath.Ext(filename))]; exists {
		return contentType
	}
	return "application/octet-stream"
}
