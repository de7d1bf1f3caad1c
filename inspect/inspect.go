// Package inspect renders serialized node streams and containers field by
// field through a dynamically built protobuf descriptor. Nothing here
// interprets the tree; it prints what is physically in the stream, unknown
// fields included, which is what you want when a container refuses to
// decode.
package inspect

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/builder"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/jscomp/typedast/wire"
)

var (
	buildOnce sync.Once
	fileDesc  *desc.FileDescriptor
	buildErr  error
)

// FileDescriptor returns the descriptor of the exchange format, built once
// from the wire package's field numbers and enumerations.
func FileDescriptor() (*desc.FileDescriptor, error) {
	buildOnce.Do(func() { fileDesc, buildErr = buildFileDescriptor() })
	return fileDesc, buildErr
}

func buildFileDescriptor() (*desc.FileDescriptor, error) {
	kind := builder.NewEnum("NodeKind")
	kind.AddValue(builder.NewEnumValue(wire.KindUnspecified.String()).SetNumber(0))
	for _, k := range wire.AllKinds() {
		kind.AddValue(builder.NewEnumValue(k.String()).SetNumber(int32(k)))
	}

	fileKind := builder.NewEnum("FileRecordKind")
	fileKind.AddValue(builder.NewEnumValue("FILE_RECORD_EXTERN").SetNumber(int32(wire.FileRecordExtern)))
	fileKind.AddValue(builder.NewEnumValue("FILE_RECORD_SOURCE").SetNumber(int32(wire.FileRecordSource)))

	template := builder.NewMessage("TemplateStringValue")
	template.AddField(builder.NewField("cooked_string_pointer", builder.FieldTypeUInt32()).
		SetNumber(int32(wire.FieldTemplateCooked)))
	template.AddField(builder.NewField("raw_string_pointer", builder.FieldTypeUInt32()).
		SetNumber(int32(wire.FieldTemplateRaw)))

	node := builder.NewMessage("AstNode")
	node.AddField(builder.NewField("kind", builder.FieldTypeEnum(kind)).
		SetNumber(int32(wire.FieldNodeKind)))
	node.AddField(builder.NewField("child", builder.FieldTypeMessage(node)).
		SetNumber(int32(wire.FieldNodeChild)).SetRepeated())
	node.AddField(builder.NewField("string_value_pointer", builder.FieldTypeUInt32()).
		SetNumber(int32(wire.FieldNodeStringValue)))
	node.AddField(builder.NewField("double_value", builder.FieldTypeDouble()).
		SetNumber(int32(wire.FieldNodeDoubleValue)))
	node.AddField(builder.NewField("template_string_value", builder.FieldTypeMessage(template)).
		SetNumber(int32(wire.FieldNodeTemplateString)))
	node.AddField(builder.NewField("relative_line", builder.FieldTypeSInt32()).
		SetNumber(int32(wire.FieldNodeRelativeLine)))
	node.AddField(builder.NewField("relative_column", builder.FieldTypeSInt32()).
		SetNumber(int32(wire.FieldNodeRelativeColumn)))
	node.AddField(builder.NewField("jsdoc", builder.FieldTypeBytes()).
		SetNumber(int32(wire.FieldNodeJSDoc)))
	node.AddField(builder.NewField("original_name_pointer", builder.FieldTypeUInt32()).
		SetNumber(int32(wire.FieldNodeOriginalName)))
	node.AddField(builder.NewField("type", builder.FieldTypeUInt32()).
		SetNumber(int32(wire.FieldNodeType)))
	node.AddField(builder.NewField("boolean_properties", builder.FieldTypeUInt64()).
		SetNumber(int32(wire.FieldNodeBoolProps)))
	node.AddField(builder.NewField("source_file", builder.FieldTypeUInt32()).
		SetNumber(int32(wire.FieldNodeSourceFile)))

	record := builder.NewMessage("SourceFileRecord")
	record.AddField(builder.NewField("filename", builder.FieldTypeString()).
		SetNumber(int32(wire.FieldFileFilename)))
	record.AddField(builder.NewField("kind", builder.FieldTypeEnum(fileKind)).
		SetNumber(int32(wire.FieldFileKind)))

	script := builder.NewMessage("LazyScript")
	script.AddField(builder.NewField("script", builder.FieldTypeBytes()).
		SetNumber(int32(wire.FieldScriptBytes)))
	script.AddField(builder.NewField("source_file", builder.FieldTypeUInt32()).
		SetNumber(int32(wire.FieldScriptSourceFile)))
	script.AddField(builder.NewField("source_mapping_url", builder.FieldTypeString()).
		SetNumber(int32(wire.FieldScriptSourceMappingURL)))

	container := builder.NewMessage("TypedAST")
	container.AddField(builder.NewField("string_pool", builder.FieldTypeString()).
		SetNumber(int32(wire.FieldContainerStringPool)).SetRepeated())
	container.AddField(builder.NewField("file_pool", builder.FieldTypeMessage(record)).
		SetNumber(int32(wire.FieldContainerFilePool)).SetRepeated())
	container.AddField(builder.NewField("script", builder.FieldTypeMessage(script)).
		SetNumber(int32(wire.FieldContainerScript)).SetRepeated())

	file := builder.NewFile("typedast.proto").SetProto3(true).SetPackageName("typedast.wire")
	file.AddEnum(kind)
	file.AddEnum(fileKind)
	file.AddMessage(template)
	file.AddMessage(node)
	file.AddMessage(record)
	file.AddMessage(script)
	file.AddMessage(container)
	return file.Build()
}

func messageDescriptor(name string) (*desc.MessageDescriptor, error) {
	fd, err := FileDescriptor()
	if err != nil {
		return nil, err
	}
	md := fd.FindMessage("typedast.wire." + name)
	if md == nil {
		return nil, fmt.Errorf("message %s missing from descriptor", name)
	}
	return md, nil
}

// Script renders one serialized script stream.
func Script(stream []byte) (string, error) {
	return render("AstNode", stream)
}

// Container renders a whole serialized container. Script streams inside it
// are rendered as node trees when they parse, as raw bytes otherwise.
func Container(data []byte) (string, error) {
	return render("TypedAST", data)
}

func render(message string, data []byte) (string, error) {
	md, err := messageDescriptor(message)
	if err != nil {
		return "", err
	}
	msg := dynamic.NewMessage(md)
	if err := msg.Unmarshal(data); err != nil {
		return "", fmt.Errorf("unmarshaling %s: %w", message, err)
	}
	var sb strings.Builder
	if err := appendMessage(&sb, msg, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func appendMessage(sb *strings.Builder, msg *dynamic.Message, indent int) error {
	for _, field := range msg.GetKnownFields() {
		if !msg.HasField(field) {
			continue
		}
		val := msg.GetField(field)
		if field.IsRepeated() {
			slice := reflect.ValueOf(val)
			for i := 0; i < slice.Len(); i++ {
				if err := appendField(sb, field, slice.Index(i).Interface(), indent); err != nil {
					return err
				}
			}
			continue
		}
		if err := appendField(sb, field, val, indent); err != nil {
			return err
		}
	}
	appendUnknownFields(sb, msg, indent)
	return nil
}

func appendField(sb *strings.Builder, field *desc.FieldDescriptor, val interface{}, indent int) error {
	pad := strings.Repeat("  ", indent)
	name := field.GetName()

	switch field.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		nested, ok := val.(*dynamic.Message)
		if !ok {
			return fmt.Errorf("field %s: unexpected message representation %T", name, val)
		}
		fmt.Fprintf(sb, "%s%s {\n", pad, name)
		if err := appendMessage(sb, nested, indent+1); err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s}\n", pad)

	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		num := val.(int32)
		if ev := field.GetEnumType().FindValueByNumber(num); ev != nil {
			fmt.Fprintf(sb, "%s%s: %s\n", pad, name, ev.GetName())
		} else {
			fmt.Fprintf(sb, "%s%s: %d\n", pad, name, num)
		}

	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		fmt.Fprintf(sb, "%s%s: %q\n", pad, name, val.(string))

	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		b := val.([]byte)
		// A LazyScript's script field is itself a node stream; show the
		// tree when it parses.
		if name == "script" {
			return appendScriptBytes(sb, name, b, indent)
		}
		fmt.Fprintf(sb, "%s%s: %d bytes %x\n", pad, name, len(b), b)

	default:
		fmt.Fprintf(sb, "%s%s: %v\n", pad, name, val)
	}
	return nil
}

func appendScriptBytes(sb *strings.Builder, name string, b []byte, indent int) error {
	pad := strings.Repeat("  ", indent)
	md, err := messageDescriptor("AstNode")
	if err != nil {
		return err
	}
	msg := dynamic.NewMessage(md)
	if err := msg.Unmarshal(b); err != nil {
		fmt.Fprintf(sb, "%s%s: %d bytes %x\n", pad, name, len(b), b)
		return nil
	}
	fmt.Fprintf(sb, "%s%s {\n", pad, name)
	if err := appendMessage(sb, msg, indent+1); err != nil {
		return err
	}
	fmt.Fprintf(sb, "%s}\n", pad)
	return nil
}

func appendUnknownFields(sb *strings.Builder, msg *dynamic.Message, indent int) {
	pad := strings.Repeat("  ", indent)
	tags := msg.GetUnknownFields()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	for _, tag := range tags {
		for _, uf := range msg.GetUnknownField(tag) {
			switch protowire.Type(uf.Encoding) {
			case protowire.BytesType, protowire.StartGroupType:
				fmt.Fprintf(sb, "%s%d: %d bytes %x\n", pad, tag, len(uf.Contents), uf.Contents)
			default:
				fmt.Fprintf(sb, "%s%d: %d\n", pad, tag, uf.Value)
			}
		}
	}
}
