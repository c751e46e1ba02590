package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CVStorageService sube los CV y documentos de los postulantes a un bucket S3
type CVStorageService struct {
	BucketName string
	Region     string
	Client     *s3.Client
}

// NewCVStorageService inicializa el servicio de almacenamiento de CVs
func NewCVStorageService(bucketName, region string) (*CVStorageService, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("el nombre del bucket S3 no está configurado")
	}
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("error al cargar configuración de AWS: %w", err)
	}

	return &CVStorageService{
		BucketName: bucketName,
		Region:     region,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

// extensionesPermitidas para documentos de postulantes
var extensionesPermitidas = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadCV sube el documento de un postulante y retorna la URL pública
func (s *CVStorageService) UploadCV(postulanteID string, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !extensionesPermitidas[ext] {
		return "", fmt.Errorf("tipo de archivo no permitido: %s", ext)
	}

	buffer := bytes.NewBuffer(nil)
	if _, err := buffer.ReadFrom(file); err != nil {
		return "", fmt.Errorf("error al leer archivo: %w", err)
	}

	// Nombre único por postulante y momento de subida
	key := fmt.Sprintf("cv/%s/%d_%s", postulanteID, time.Now().Unix(), fileHeader.Filename)

	putObjectInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buffer.Bytes()),
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	}

	if _, err := s.Client.PutObject(context.TODO(), putObjectInput); err != nil {
		return "", fmt.Errorf("error al subir archivo a S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.BucketName, s.Region, key)
	return url, nil
}
