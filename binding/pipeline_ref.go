package binding

// PipelineKind distinguishes receive from send message pipelines. The values
// match the Type attribute of binding files.
type PipelineKind int

const (
	ReceivePipeline PipelineKind = 1
	SendPipeline    PipelineKind = 2
)

const defaultPipelinesAssembly = "Microsoft.BizTalk.DefaultPipelines, Version=3.0.1.0, Culture=neutral, PublicKeyToken=31bf3856ad364e35"

// PipelineRef references a deployed BizTalk message pipeline.
type PipelineRef struct {
	// Name is the pipeline's full type name.
	Name string
	// Assembly is the strong name of the assembly containing the pipeline.
	Assembly string
	Kind     PipelineKind
	// Data is the per-instance pipeline configuration XML, if any.
	Data string
}

// Built-in BizTalk pipelines.
var (
	PassThruReceive  = defaultPipeline("Microsoft.BizTalk.DefaultPipelines.PassThruReceive", ReceivePipeline)
	XMLReceive       = defaultPipeline("Microsoft.BizTalk.DefaultPipelines.XMLReceive", ReceivePipeline)
	PassThruTransmit = defaultPipeline("Microsoft.BizTalk.DefaultPipelines.PassThruTransmit", SendPipeline)
	XMLTransmit      = defaultPipeline("Microsoft.BizTalk.DefaultPipelines.XMLTransmit", SendPipeline)
)

func defaultPipeline(name string, kind PipelineKind) PipelineRef {
	return PipelineRef{Name: name, Assembly: defaultPipelinesAssembly, Kind: kind}
}

// IsZero reports whether no pipeline is referenced.
func (p PipelineRef) IsZero() bool {
	return p.Name == ""
}

// FullyQualifiedName returns the assembly-qualified type name.
func (p PipelineRef) FullyQualifiedName() string {
	if p.Assembly == "" {
		return p.Name
	}

	return p.Name + ", " + p.Assembly
}

// WithData returns a copy of p carrying pipeline configuration data.
func (p PipelineRef) WithData(data string) PipelineRef {
	p.Data = data
	return p
}
