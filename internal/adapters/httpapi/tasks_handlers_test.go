package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/taskboard-hq/taskboard-api/internal/realtime"
)

func authedEnv(t *testing.T) (*testEnv, string) {
	t.Helper()
	env := newTestEnv(t)
	env.register(t, "ana@example.com", "secret-pass")
	return env, env.login(t, "ana@example.com", "secret-pass")
}

func nextEvent(t *testing.T, sub *realtime.Subscriber) realtime.TaskEvent {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if !ok {
			t.Fatalf("event channel closed")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for broadcast")
	}
	return realtime.TaskEvent{}
}

func TestTasks_Lifecycle(t *testing.T) {
	t.Parallel()

	env, token := authedEnv(t)

	rec := env.do(t, http.MethodPost, "/api/tareas", token, map[string]any{
		"ProyectoID": 1,
		"Titulo":     "Primera tarea",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rec.Code, rec.Body.String())
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Task created successfully" {
		t.Fatalf("message=%q", msg)
	}

	rec = env.do(t, http.MethodGet, "/api/tareas", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status=%d", rec.Code)
	}
	var tasks []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(tasks) != 1 || tasks[0]["Titulo"] != "Primera tarea" {
		t.Fatalf("unexpected list: %#v", tasks)
	}
	// Omitted fields got defaults.
	if tasks[0]["Estado"] != "pendiente" {
		t.Fatalf("Estado=%v, want pendiente", tasks[0]["Estado"])
	}

	rec = env.do(t, http.MethodPut, "/api/tareas/1", token, map[string]any{
		"ProyectoID":  1,
		"Titulo":      "Renombrada",
		"Importancia": 5,
		"Estado":      "en_proceso",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/tareas/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status=%d", rec.Code)
	}
	var task map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if task["Titulo"] != "Renombrada" || task["Estado"] != "en_proceso" {
		t.Fatalf("unexpected task: %#v", task)
	}

	rec = env.do(t, http.MethodDelete, "/api/tareas/1", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/tareas/1", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status=%d", rec.Code)
	}
	if msg := decodeMessage(t, rec)["message"]; msg != "Task not found" {
		t.Fatalf("message=%q", msg)
	}
}

func TestTasks_CreateValidation(t *testing.T) {
	t.Parallel()

	env, token := authedEnv(t)

	rec := env.do(t, http.MethodPost, "/api/tareas", token, map[string]any{
		"ProyectoID": 1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestTasks_MutationsBroadcast(t *testing.T) {
	t.Parallel()

	env, token := authedEnv(t)
	sub := env.hub.Subscribe()
	t.Cleanup(func() { env.hub.Unsubscribe(sub) })

	rec := env.do(t, http.MethodPost, "/api/tareas", token, map[string]any{
		"ProyectoID": 2,
		"Titulo":     "Con broadcast",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rec.Code, rec.Body.String())
	}
	ev := nextEvent(t, sub)
	if ev.Kind != realtime.EventNewTask {
		t.Fatalf("kind=%q, want new_task", ev.Kind)
	}
	payload, ok := ev.Data["task"].(map[string]any)
	if !ok || payload["Titulo"] != "Con broadcast" {
		t.Fatalf("unexpected event payload: %#v", ev.Data)
	}

	rec = env.do(t, http.MethodPut, "/api/tareas/1", token, map[string]any{
		"ProyectoID": 2,
		"Titulo":     "Editada",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status=%d body=%s", rec.Code, rec.Body.String())
	}
	if ev := nextEvent(t, sub); ev.Kind != realtime.EventUpdateTask {
		t.Fatalf("kind=%q, want update_task", ev.Kind)
	}

	rec = env.do(t, http.MethodDelete, "/api/tareas/1", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d body=%s", rec.Code, rec.Body.String())
	}
	ev = nextEvent(t, sub)
	if ev.Kind != realtime.EventDeleteTask {
		t.Fatalf("kind=%q, want delete_task", ev.Kind)
	}
	if ev.Data["task_id"] != int64(1) {
		t.Fatalf("task_id=%v, want 1", ev.Data["task_id"])
	}
}

func TestTasks_FailedCreateDoesNotBroadcast(t *testing.T) {
	t.Parallel()

	env, token := authedEnv(t)
	sub := env.hub.Subscribe()
	t.Cleanup(func() { env.hub.Unsubscribe(sub) })

	rec := env.do(t, http.MethodPost, "/api/tareas", token, map[string]any{
		"ProyectoID": 1,
		"Titulo":     "Mal estado",
		"Estado":     "no-es-un-estado",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected broadcast: %#v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
