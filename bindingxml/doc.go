// Package bindingxml renders binding graphs as BizTalk binding files.
//
// Builder is a binding.Visitor filling a Document, the encoding/xml model of
// the BindingInfo schema. Serializer drives a binding.VisitorPipeline with a
// Builder, so every document is produced from a graph whose environment
// overrides were applied and which passed validation:
//
//	data, err := bindingxml.NewSerializer(app, environment.For(environment.Acceptance)).Serialize()
//
// Booleans are written true/false, dates with DateTimeLayout, and enums with
// the numeric values BizTalk uses. Adapter configuration and subscription
// filters are embedded as escaped XML text.
package bindingxml
