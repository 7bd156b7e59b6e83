package http

import (
	"time"

	"org-tasks-sync/internal/model"
	"org-tasks-sync/internal/outline"
	"org-tasks-sync/internal/sync"
	"org-tasks-sync/internal/tasktree"
	"org-tasks-sync/pkg/response"
)

// --- Request DTOs ---

type listQuery struct {
	ListName string `form:"listname"`
}

type outlineReq struct {
	ListName string `form:"listname"`
	Outline  string `json:"outline"`

	tree *tasktree.Tree
}

func (r *outlineReq) validate() error {
	tree, err := outline.Decode(r.Outline)
	if err != nil {
		return err
	}
	r.tree = tree
	return nil
}

func (r outlineReq) toPushInput() sync.PushInput {
	return sync.PushInput{ListName: r.ListName, Tree: r.tree}
}

func (r outlineReq) toSyncInput() sync.SyncInput {
	return sync.SyncInput{ListName: r.ListName, Local: r.tree}
}

// --- Response DTOs ---

type listResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type listsResp struct {
	Lists []listResp `json:"lists"`
}

func (h *handler) newListsResp(lists []model.TaskList) listsResp {
	out := make([]listResp, len(lists))
	for i, l := range lists {
		out[i] = listResp{ID: l.ID, Title: l.Title}
	}
	return listsResp{Lists: out}
}

type outlineResp struct {
	List    string `json:"list"`
	ListID  string `json:"list_id"`
	Outline string `json:"outline"`
	Tasks   int    `json:"tasks"`
}

func (h *handler) newOutlineResp(listName string, out sync.PullOutput) outlineResp {
	return outlineResp{
		List:    listName,
		ListID:  out.ListID,
		Outline: out.Outline,
		Tasks:   out.Tree.Len(),
	}
}

type pushResp struct {
	List   string `json:"list"`
	ListID string `json:"list_id"`
	Tasks  int    `json:"tasks"`
}

func (h *handler) newPushResp(listName string, out sync.PushOutput) pushResp {
	return pushResp{
		List:   listName,
		ListID: out.ListID,
		Tasks:  out.TaskCount,
	}
}

type syncResp struct {
	List      string            `json:"list"`
	ListID    string            `json:"list_id"`
	Outline   string            `json:"outline"`
	Conflict  bool              `json:"conflict"`
	FirstSync bool              `json:"first_sync"`
	SyncedAt  response.DateTime `json:"synced_at"`
}

func (h *handler) newSyncResp(listName string, out sync.SyncOutput) syncResp {
	return syncResp{
		List:      listName,
		ListID:    out.ListID,
		Outline:   out.Outline,
		Conflict:  out.Conflict,
		FirstSync: out.FirstSync,
		SyncedAt:  response.DateTime(time.Now()),
	}
}
