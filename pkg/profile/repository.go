// Package profile persists the company record to its fixed-name profile
// files in one base directory.
package profile

import (
	"fmt"
	"os"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/company"
	"github.com/pigeonworks-llc/company-manager/pkg/pathutil"
)

// WriteResult describes one written profile file.
type WriteResult struct {
	Format codec.Format
	Path   string
	Bytes  int
}

// FileStatus reports the on-disk state of one expected profile file.
type FileStatus struct {
	Format codec.Format
	Name   string
	Path   string
	Exists bool
}

// Repository defines the interface for profile file operations.
type Repository interface {
	// Write encodes the record in one format and overwrites its file
	Write(format codec.Format, rec *company.Record) (WriteResult, error)

	// Read decodes the record from the file for a format
	Read(format codec.Format) (*company.Record, error)

	// WriteAll rewrites every profile file from the record
	WriteAll(rec *company.Record) ([]WriteResult, error)

	// Check reports the on-disk status of every profile file
	Check() []FileStatus
}

// FileSystemRepository is a file system implementation of Repository.
type FileSystemRepository struct {
	pathResolver *pathutil.PathResolver
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(pathResolver *pathutil.PathResolver) *FileSystemRepository {
	return &FileSystemRepository{
		pathResolver: pathResolver,
	}
}

// Write encodes the record and replaces the format's file in one
// whole-file overwrite.
func (r *FileSystemRepository) Write(format codec.Format, rec *company.Record) (WriteResult, error) {
	c, err := codec.ForFormat(format)
	if err != nil {
		return WriteResult{}, err
	}

	data, err := c.Encode(rec)
	if err != nil {
		return WriteResult{}, fmt.Errorf("failed to encode %s profile: %w", format, err)
	}

	filePath, err := r.pathResolver.GetProfilePath(format)
	if err != nil {
		return WriteResult{}, err
	}

	if err := r.pathResolver.EnsureParentDir(filePath); err != nil {
		return WriteResult{}, err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return WriteResult{}, fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	return WriteResult{Format: format, Path: filePath, Bytes: len(data)}, nil
}

// Read loads and decodes the file for a format. A missing file surfaces
// as the wrapped os error, so callers can test for fs.ErrNotExist.
func (r *FileSystemRepository) Read(format codec.Format) (*company.Record, error) {
	c, err := codec.ForFormat(format)
	if err != nil {
		return nil, err
	}

	filePath, err := r.pathResolver.GetProfilePath(format)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	rec, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s profile: %w", format, err)
	}

	return rec, nil
}

// WriteAll rewrites every profile file from the record, in the
// canonical format order. It stops at the first failure.
func (r *FileSystemRepository) WriteAll(rec *company.Record) ([]WriteResult, error) {
	var results []WriteResult
	for _, format := range codec.Formats() {
		result, err := r.Write(format, rec)
		if err != nil {
			return results, fmt.Errorf("failed to update %s profile: %w", format, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// Check reports, for every expected profile file, whether it is present
// in the profile directory.
func (r *FileSystemRepository) Check() []FileStatus {
	var statuses []FileStatus
	for _, format := range codec.Formats() {
		name, err := pathutil.ProfileFileName(format)
		if err != nil {
			continue
		}
		filePath, err := r.pathResolver.GetProfilePath(format)
		if err != nil {
			continue
		}
		statuses = append(statuses, FileStatus{
			Format: format,
			Name:   name,
			Path:   filePath,
			Exists: r.pathResolver.FileExists(filePath),
		})
	}
	return statuses
}
