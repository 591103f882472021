package events

import "github.com/atomicstack/lapse-browser/internal/logging"

type ArchiveTracer struct{}

var Archive = ArchiveTracer{}

func (ArchiveTracer) Scan(dir string, files int) {
	logging.Trace("archive.scan", map[string]interface{}{"dir": dir, "files": files})
}

func (ArchiveTracer) ScanError(dir string, err error) {
	logging.Trace("archive.scan.error", map[string]interface{}{"dir": dir, "error": err.Error()})
}

func (ArchiveTracer) DeletePrompt(targets []string) {
	logging.Trace("archive.delete.prompt", map[string]interface{}{"targets": targets})
}

func (ArchiveTracer) DeleteCancel(reason string) {
	logging.Trace("archive.delete.cancel", map[string]interface{}{"reason": reason})
}

func (ArchiveTracer) Delete(targets []string) {
	logging.Trace("archive.delete", map[string]interface{}{"targets": targets})
}
