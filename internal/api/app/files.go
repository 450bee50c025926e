package app

import "github.com/kazukinakai/neural-translator/internal/adapters/extract"

// FilesAPI exposes file text extraction to the GUI layer.
type FilesAPI struct{ reg *extract.Registry }

func NewFilesAPI(reg *extract.Registry) *FilesAPI { return &FilesAPI{reg: reg} }

func (a *FilesAPI) ReadFileContent(filePath string) (string, error) {
	return a.reg.ReadFile(filePath)
}

func (a *FilesAPI) ValidateFileType(filePath string) (string, error) {
	return a.reg.ValidateType(filePath)
}

// ProcessFileContent extracts text from a base64-encoded payload the GUI
// received via drag and drop.
func (a *FilesAPI) ProcessFileContent(fileData, fileName string) (string, error) {
	return a.reg.ProcessContent(fileData, fileName)
}
