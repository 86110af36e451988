// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the presented message list for one conversation.
package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/timeline"
)

func event(id, body string) *model.MessageEvent {
	return &model.MessageEvent{EventID: id, Sender: "@test:local", Kind: model.EventText, Body: body}
}

func seedList(t *testing.T, ids ...string) *MessageList {
	t.Helper()
	list := NewMessageList()
	data := make([]timeline.SourceDatum, len(ids))
	for i, id := range ids {
		data[i] = event(id, "seed:"+id)
	}
	list.ProcessBatch([]timeline.Edit{timeline.Reset(data...)})
	return list
}

func order(list *MessageList) []string {
	msgs := list.Messages()
	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.TimelineID()
	}
	return ids
}

// =============================================================================
// BATCH ROUTING
// =============================================================================

func TestProcessBatch_EligibleBatchIsMinimized(t *testing.T) {
	list := seedList(t, "a", "b", "c")

	var notified [][]timeline.Op
	list.SetObserver(func(ops []timeline.Op) {
		notified = append(notified, ops)
	})

	list.ProcessBatch([]timeline.Edit{
		timeline.Append(event("d", "new")),
		timeline.Set(1, event("b", "edited")),
	})

	require.Equal(t, []string{"a", "b", "c", "d"}, order(list))
	require.Len(t, notified, 1)
	require.NotNil(t, notified[0], "minimized batch must report its op list")
	require.Len(t, notified[0], 2)
}

func TestProcessBatch_SingleEditRebuilds(t *testing.T) {
	list := seedList(t, "a", "b", "c")

	var notified [][]timeline.Op
	list.SetObserver(func(ops []timeline.Op) {
		notified = append(notified, ops)
	})

	list.ProcessBatch([]timeline.Edit{timeline.Remove(1)})

	require.Equal(t, []string{"a", "c"}, order(list))
	require.Len(t, notified, 1)
	require.Nil(t, notified[0], "rebuild must notify with nil ops")
}

func TestProcessBatch_ClearRebuilds(t *testing.T) {
	list := seedList(t, "a", "b")

	list.ProcessBatch([]timeline.Edit{timeline.Clear()})

	require.Zero(t, list.Len())
}

func TestProcessBatch_TruncateAndReset(t *testing.T) {
	list := seedList(t, "a", "b", "c", "d")

	list.ProcessBatch([]timeline.Edit{timeline.Truncate(2)})
	require.Equal(t, []string{"a", "b"}, order(list))

	list.ProcessBatch([]timeline.Edit{timeline.Reset(event("x", "x"), event("y", "y"))})
	require.Equal(t, []string{"x", "y"}, order(list))
}

func TestProcessBatch_EmptyBatchIsNoOp(t *testing.T) {
	list := seedList(t, "a")

	called := false
	list.SetObserver(func([]timeline.Op) { called = true })

	list.ProcessBatch(nil)

	require.Equal(t, []string{"a"}, order(list))
	require.False(t, called)
}

// =============================================================================
// IDENTITY STABILITY ACROSS PATHS
// =============================================================================

func TestProcessBatch_KeptMessagesSurviveMinimization(t *testing.T) {
	list := seedList(t, "a", "b", "c")
	before := list.Messages()

	list.ProcessBatch([]timeline.Edit{
		timeline.Remove(0),
		timeline.Insert(0, event("d", "head")),
		timeline.Set(2, event("c", "edited")),
	})

	require.Equal(t, []string{"d", "b", "c"}, order(list))

	after := list.Messages()
	require.Same(t, before[1], after[1], "kept message b must not be recreated")
	require.Same(t, before[2], after[2], "updated message c must not be recreated")
	require.Equal(t, "edited", after[2].Body)
	require.True(t, after[2].Edited)
}

func TestProcessBatch_RebuildPreservesIdentity(t *testing.T) {
	list := seedList(t, "a", "b")
	before := list.Messages()

	// Reset re-delivers the same identities; the handles must survive.
	list.ProcessBatch([]timeline.Edit{
		timeline.Reset(event("a", "again"), event("b", "again")),
	})

	after := list.Messages()
	require.Same(t, before[0], after[0])
	require.Same(t, before[1], after[1])
	require.Equal(t, "again", after[0].Body)
}

// =============================================================================
// APPLY SEMANTICS
// =============================================================================

func TestApplyItemDiffList_PositionsAreSequential(t *testing.T) {
	list := seedList(t, "a", "b", "c", "d")

	// Two splices whose positions refer to the list state mid-replay.
	first := model.NewMessage(event("x", "x"))
	list.ApplyItemDiffList([]timeline.Op{
		timeline.SpliceDiff{Pos: 0, NumRemovals: 1, Additions: []timeline.Item{first}},
		timeline.SpliceDiff{Pos: 3, NumRemovals: 1},
	})

	require.Equal(t, []string{"x", "b", "c"}, order(list))
}

func TestApplyItemDiffList_OutOfRangePanics(t *testing.T) {
	list := seedList(t, "a")
	require.Panics(t, func() {
		list.ApplyItemDiffList([]timeline.Op{
			timeline.SpliceDiff{Pos: 0, NumRemovals: 2},
		})
	})
}
