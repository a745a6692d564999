// Command vkdebugdemo demonstrates the vkdebug diagnostic bridge against
// the in-process software layer: it registers a messenger, names objects,
// records command-buffer labels, raises a synthetic validation error and
// manually submits messages through the injection path.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fatih/color"

	"github.com/gogpu/vkdebug"
	"github.com/gogpu/vkdebug/driver/softdriver"
)

var (
	errorStyle = color.New(color.FgRed, color.Bold)
	warnStyle  = color.New(color.FgYellow, color.Bold)
	infoStyle  = color.New(color.FgCyan)
)

func main() {
	preset := flag.String("filter", "all", "messenger filter preset: all, errors, none")
	flag.Parse()

	var filter vkdebug.MessageFilter
	switch *preset {
	case "all":
		filter = vkdebug.FilterAll()
	case "errors":
		filter = vkdebug.FilterErrorsAndWarnings()
	case "none":
		filter = vkdebug.FilterNone()
	default:
		log.Fatalf("unknown filter preset %q", *preset)
	}

	layer := softdriver.New()
	instance, err := vkdebug.NewInstance(0x1, layer.Table(), vkdebug.InstanceOptions{
		EXTDebugUtils: true,
	})
	if err != nil {
		log.Fatalf("create instance: %v", err)
	}

	messenger, err := vkdebug.Register(instance, filter, printMessage)
	if err != nil {
		log.Fatalf("register messenger: %v", err)
	}

	// Name resources the way an application would, so messages that refer
	// to them carry a readable name instead of a bare handle.
	const (
		objectTypeBuffer        = 9
		objectTypeCommandBuffer = 6
	)
	if err := instance.SetObjectName(objectTypeBuffer, 0x42, "StagingBuffer"); err != nil {
		log.Fatalf("set object name: %v", err)
	}
	if err := instance.SetObjectName(objectTypeCommandBuffer, 0x10, "CopyCommands"); err != nil {
		log.Fatalf("set object name: %v", err)
	}

	// Record labels around a pretend copy.
	cb := instance.CommandBuffer(0x10)
	cb.BeginLabel(vkdebug.Label{Name: "Begin Of Buffer", Color: [4]float32{0.9, 0.7, 1.0, 1.0}})
	cb.InsertLabel(vkdebug.Label{Name: "CopyStarting", Color: [4]float32{1, 1, 1, 1}})

	// Raise a synthetic validation error referencing the named buffer; it
	// goes through the filter like a real layer-reported event.
	delivered := layer.Raise(instance.Handle(),
		uint32(vkdebug.SeverityError), uint32(vkdebug.TypeValidation),
		softdriver.Event{
			IDNumber:      0x2a,
			IDName:        "VUID-demo-copy",
			Message:       "copy source extends past the end of StagingBuffer",
			CommandBuffer: 0x10,
			Objects: []softdriver.Object{
				{Type: objectTypeBuffer, Handle: 0x42},
				{Type: objectTypeCommandBuffer, Handle: 0x10},
			},
		})
	fmt.Printf("raised validation error, delivered to %d messenger(s)\n\n", delivered)

	cb.EndLabel()

	// Manual submission bypasses the filter, so these arrive even with
	// -filter none.
	submit(messenger, vkdebug.SeverityError, "DebugMsg", "This is a debug error message!")
	submit(messenger, vkdebug.SeverityWarning, "DebugMsg", "This is a debug warning message!")

	messenger.Close()
	if err := instance.Close(); err != nil {
		log.Fatalf("close instance: %v", err)
	}
}

func submit(m *vkdebug.Messenger, severity vkdebug.MessageSeverity, name, desc string) {
	err := m.Submit(&vkdebug.Message{
		Severity:    severity,
		Types:       vkdebug.TypeGeneral,
		IDName:      name,
		Description: desc,
		Objects: []vkdebug.ObjectNameInfo{
			{Type: 100, Handle: 0, Name: "Dummy object"},
		},
	})
	if err != nil {
		log.Fatalf("submit message: %v", err)
	}
}

// printMessage is the registered callback. It classifies the event the way
// the classic validation-layer examples do and dumps labels and objects.
func printMessage(msg *vkdebug.Message) {
	var style *color.Color
	var kind string
	switch {
	case msg.Severity.Contains(vkdebug.SeverityError):
		style, kind = errorStyle, "error"
	case msg.Severity.Contains(vkdebug.SeverityWarning) && msg.Types.Contains(vkdebug.TypePerformance):
		style, kind = warnStyle, "performance_warning"
	case msg.Severity.Contains(vkdebug.SeverityWarning):
		style, kind = warnStyle, "warning"
	case msg.Severity.Contains(vkdebug.SeverityInfo):
		style, kind = infoStyle, "information"
	default:
		style, kind = infoStyle, "debug"
	}

	style.Printf("%s [%s]: ", kind, msg.IDName)
	fmt.Println(msg.Description)

	fmt.Printf("  Queue Labels(%d):\n", len(msg.QueueLabels))
	for _, l := range msg.QueueLabels {
		fmt.Printf("    %s %v\n", l.Name, l.Color)
	}
	fmt.Printf("  CmdBuf Labels(%d):\n", len(msg.CommandBufferLabels))
	for _, l := range msg.CommandBufferLabels {
		fmt.Printf("    %s %v\n", l.Name, l.Color)
	}
	fmt.Printf("  Objects(%d):\n", len(msg.Objects))
	for _, obj := range msg.Objects {
		fmt.Printf("    %s type=%d handle=0x%x\n", obj.Name, obj.Type, obj.Handle)
	}
	fmt.Println()
}
