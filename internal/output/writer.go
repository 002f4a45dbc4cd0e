package output

import (
	"fmt"
	"os"
	"path/filepath"

	"binding-generator/environment"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is a rendered binding file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// FileName returns the binding file name of an application for env, e.g.
// "sample.DEV.xml".
func FileName(application string, env environment.Environment) string {
	return fmt.Sprintf("%s.%s.xml", application, env)
}

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist. Each file is written to a
// temporary sibling first and renamed, so a failed write never leaves a
// truncated binding file behind.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := writeFile(outputPath, file.Content)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

func writeFile(path string, content []byte) error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, content, filePerm); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
