package events

import "github.com/atomicstack/listedit/internal/logging"

type ItemTracer struct{}

type EditTracer struct{}

type editReason string

const (
	EditReasonEscape editReason = "escape"
	EditReasonButton editReason = "button"
)

var (
	Item = ItemTracer{}
	Edit = EditTracer{}
)

func (ItemTracer) Add(id, value string) {
	logging.Trace("item.add", map[string]interface{}{"id": id, "value": value})
}

func (ItemTracer) Update(id, value string) {
	logging.Trace("item.update", map[string]interface{}{"id": id, "value": value})
}

func (ItemTracer) UpdateMissing(id string) {
	logging.Trace("item.update.missing", map[string]interface{}{"id": id})
}

func (ItemTracer) Remove(id string, index int) {
	logging.Trace("item.remove", map[string]interface{}{"id": id, "index": index})
}

func (ItemTracer) DeletePrompt(id string) {
	logging.Trace("item.delete.prompt", map[string]interface{}{"id": id})
}

func (ItemTracer) DeleteResolve(id, answer string) {
	logging.Trace("item.delete.resolve", map[string]interface{}{"id": id, "answer": answer})
}

func (ItemTracer) Validation(field string) {
	logging.Trace("item.validation", map[string]interface{}{"field": field})
}

func (ItemTracer) Copy(id string) {
	logging.Trace("item.copy", map[string]interface{}{"id": id})
}

func (EditTracer) Begin(id string) {
	logging.Trace("edit.begin", map[string]interface{}{"id": id})
}

func (EditTracer) Submit(id, value string) {
	logging.Trace("edit.submit", map[string]interface{}{"id": id, "value": value})
}

func (EditTracer) Cancel(id string, reason editReason) {
	logging.Trace("edit.cancel", map[string]interface{}{"id": id, "reason": string(reason)})
}
