// Package poegen generates AI pre-sales documents for Azure engagements:
// a solution-architecture document and a matching POV deployment plan,
// both delivered as styled Word files, plus an optional SVG architecture
// diagram and resource import CSV.
//
// The pipeline is prompt -> chat completion -> markdown parse -> document
// composition. The model is instructed to emit a constrained markdown
// dialect (pipe tables, bold keyword lead-ins, ## section headings) which
// the internal renderer maps onto Word paragraphs and tables. Reference
// .docx templates, when configured, are mined for text and injected into
// the prompts so new output follows their structure.
//
// Basic usage:
//
//	client, err := llm.NewClient(llm.Config{APIKey: key, Endpoint: ep, Deployment: dep})
//	if err != nil { ... }
//	gen, err := poegen.New(cfg, client)
//	if err != nil { ... }
//	res, err := gen.Generate(ctx, poegen.Request{
//		CustomerName: "Contoso",
//		Background:   "零售行业，希望构建智能客服知识库",
//	})
//
// Result holds the rendered .docx bytes along with the raw markdown, which
// can be fed to Previewer for an in-browser rendition or to PDFExporter
// for a PDF copy.
package poegen
