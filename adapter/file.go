package adapter

import (
	"errors"
	"strings"
	"time"

	"binding-generator/binding"
	"binding-generator/environment"
)

// FileProtocol is the FILE adapter protocol.
var FileProtocol = binding.ProtocolType{
	Name:               "FILE",
	Capabilities:       binding.CapabilitySupportsReceive | binding.CapabilitySupportsSend | binding.CapabilityReceiveIsCreatable,
	ConfigurationClsid: "5e49e3a6-b4fc-4077-b44c-22f34a242fdb",
}

// FileInbound polls a folder for files matching a mask.
type FileInbound struct {
	Overrides

	ReceiveFolder       string
	FileMask            string
	RenameReceivedFiles bool
	PollingInterval     time.Duration
	BatchSize           int
	// NetworkFailureRetryCount and NetworkFailureRetryInterval govern retries
	// when the folder is a network share.
	NetworkFailureRetryCount    int
	NetworkFailureRetryInterval time.Duration
}

// NewFileInbound returns a FILE receive configuration with BizTalk defaults.
func NewFileInbound(folder, mask string) *FileInbound {
	return &FileInbound{
		ReceiveFolder:               folder,
		FileMask:                    mask,
		PollingInterval:             time.Minute,
		BatchSize:                   20,
		NetworkFailureRetryCount:    5,
		NetworkFailureRetryInterval: 5 * time.Minute,
	}
}

func (a *FileInbound) ProtocolType() binding.ProtocolType {
	return FileProtocol
}

func (a *FileInbound) Address(environment.Deployment) (string, error) {
	return joinPath(a.ReceiveFolder, a.FileMask), nil
}

func (a *FileInbound) TransportTypeData(environment.Deployment) (string, error) {
	p := &customProps{}
	p.uint32("BatchSize", a.BatchSize).
		str("FileMask", a.FileMask).
		uint32("FileNetFailRetryCount", a.NetworkFailureRetryCount).
		uint32("FileNetFailRetryInt", int(a.NetworkFailureRetryInterval/time.Minute)).
		uint32("PollingInterval", int(a.PollingInterval/time.Millisecond)).
		boolean("RenameReceivedFiles", a.RenameReceivedFiles)

	return p.String(), nil
}

func (a *FileInbound) Validate() error {
	if a.ReceiveFolder == "" {
		return errors.New("receive folder is not defined")
	}

	if a.FileMask == "" {
		return errors.New("file mask is not defined")
	}

	if a.BatchSize < 1 {
		return errors.New("batch size must be positive")
	}

	if a.PollingInterval < time.Millisecond {
		return errors.New("polling interval must be at least one millisecond")
	}

	return nil
}

// CopyMode tells the FILE send handler how to handle existing files.
type CopyMode int

const (
	CopyModeAppend    CopyMode = 0
	CopyModeOverwrite CopyMode = 1
	CopyModeCreateNew CopyMode = 2
)

// FileOutbound writes messages to files in a folder.
type FileOutbound struct {
	Overrides

	DestinationFolder  string
	FileName           string
	CopyMode           CopyMode
	UseTempFileOnWrite bool
	AllowCacheOnWrite  bool
}

// NewFileOutbound returns a FILE send configuration creating one file per
// message.
func NewFileOutbound(folder string) *FileOutbound {
	return &FileOutbound{
		DestinationFolder: folder,
		FileName:          "%MessageID%.xml",
		CopyMode:          CopyModeCreateNew,
	}
}

func (a *FileOutbound) ProtocolType() binding.ProtocolType {
	return FileProtocol
}

func (a *FileOutbound) Address(environment.Deployment) (string, error) {
	return joinPath(a.DestinationFolder, a.FileName), nil
}

func (a *FileOutbound) TransportTypeData(environment.Deployment) (string, error) {
	p := &customProps{}
	p.boolean("AllowCacheOnWrite", a.AllowCacheOnWrite).
		uint32("CopyMode", int(a.CopyMode)).
		str("FileName", a.FileName).
		boolean("UseTempFileOnWrite", a.UseTempFileOnWrite)

	return p.String(), nil
}

func (a *FileOutbound) Validate() error {
	if a.DestinationFolder == "" {
		return errors.New("destination folder is not defined")
	}

	if a.FileName == "" {
		return errors.New("file name is not defined")
	}

	if a.CopyMode < CopyModeAppend || a.CopyMode > CopyModeCreateNew {
		return errors.New("copy mode is unknown")
	}

	return nil
}

func joinPath(folder, file string) string {
	return strings.TrimRight(folder, `\/`) + `\` + file
}
