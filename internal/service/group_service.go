package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// Ensure GroupService implements api.GroupServiceHandler
var _ api.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService. Every mutation loads
// the group snapshot, applies the change in memory and saves it back.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// mutate loads a group, applies fn and saves the result.
// Errors returned by fn are passed through unchanged.
func (s *GroupService) mutate(ctx context.Context, groupID string, fn func(*models.Group) error) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, storeError(err)
	}
	if err := fn(group); err != nil {
		return nil, err
	}
	if err := s.store.SaveGroup(ctx, group); err != nil {
		return nil, storeError(err)
	}
	return group, nil
}

func memberStatus(s string) models.MemberStatus {
	if s == "" {
		return models.MemberStatusPlaceholder
	}
	return models.MemberStatus(s)
}

// cleanCategories trims names and drops blanks, duplicates and defaults.
func cleanCategories(in []string) []string {
	seen := make(map[string]bool, len(in)+len(models.DefaultCategories))
	for _, c := range models.DefaultCategories {
		seen[c] = true
	}
	var out []string
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// CreateGroup creates a new group with its initial members.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"owner_id", req.Msg.OwnerID,
		"members_count", len(req.Msg.Members),
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("group name required")
	}

	group := &models.Group{
		Name:             name,
		OwnerID:          req.Msg.OwnerID,
		CustomCategories: cleanCategories(req.Msg.CustomCategories),
	}
	for _, m := range req.Msg.Members {
		memberName := strings.TrimSpace(m.Name)
		if memberName == "" {
			return nil, invalidArgument("member name required")
		}
		group.Members = append(group.Members, models.Member{
			Name:   memberName,
			Status: memberStatus(m.Status),
		})
	}

	// Save to storage (generates IDs and timestamps)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// ListGroups retrieves all groups, optionally only those of one owner.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	slog.Info("ListGroups request received", "owner_id", req.Msg.OwnerID)

	groups, err := s.store.ListGroups(ctx, req.Msg.OwnerID)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.Group, len(groups))
	for i, group := range groups {
		out[i] = toAPIGroup(group)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{Groups: out}), nil
}

// UpdateGroup renames a group and replaces its custom categories.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	slog.Info("UpdateGroup request received",
		"group_id", req.Msg.GroupID,
		"name", req.Msg.Name,
		"categories_count", len(req.Msg.CustomCategories),
	)

	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		name := strings.TrimSpace(req.Msg.Name)
		if name == "" {
			return invalidArgument("group name required")
		}
		g.Name = name
		g.CustomCategories = cleanCategories(req.Msg.CustomCategories)
		return nil
	})
	if err != nil {
		slog.Error("UpdateGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&api.UpdateGroupResponse{Group: toAPIGroup(group)}), nil
}

// DeleteGroup removes a group by ID.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	if err := s.store.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		slog.Error("DeleteGroup failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupID)

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// AddMember appends a member to a group.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	slog.Info("AddMember request received", "group_id", req.Msg.GroupID, "name", req.Msg.Name)

	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		name := strings.TrimSpace(req.Msg.Name)
		if name == "" {
			return invalidArgument("member name required")
		}
		g.Members = append(g.Members, models.Member{Name: name, Status: memberStatus(req.Msg.Status)})
		return nil
	})
	if err != nil {
		slog.Error("AddMember failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	member := group.Members[len(group.Members)-1]
	slog.Info("Member added", "group_id", group.ID, "member_id", member.ID)

	return connect.NewResponse(&api.AddMemberResponse{
		Group:  toAPIGroup(group),
		Member: toAPIMember(member),
	}), nil
}

// UpdateMember renames a member and optionally changes its status.
func (s *GroupService) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	slog.Info("UpdateMember request received",
		"group_id", req.Msg.GroupID,
		"member_id", req.Msg.MemberID,
		"status", req.Msg.Status,
	)

	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		m := g.Member(req.Msg.MemberID)
		if m == nil {
			return notFound("member %s not in group", req.Msg.MemberID)
		}
		name := strings.TrimSpace(req.Msg.Name)
		if name == "" {
			return invalidArgument("member name required")
		}
		m.Name = name
		if req.Msg.Status != "" {
			m.Status = models.MemberStatus(req.Msg.Status)
		}
		return nil
	})
	if err != nil {
		slog.Error("UpdateMember failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Member updated", "group_id", group.ID, "member_id", req.Msg.MemberID)

	return connect.NewResponse(&api.UpdateMemberResponse{Group: toAPIGroup(group)}), nil
}

// RemoveMember deletes a member that no transaction or payment references.
func (s *GroupService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	slog.Info("RemoveMember request received", "group_id", req.Msg.GroupID, "member_id", req.Msg.MemberID)

	group, err := s.mutate(ctx, req.Msg.GroupID, func(g *models.Group) error {
		if g.Member(req.Msg.MemberID) == nil {
			return notFound("member %s not in group", req.Msg.MemberID)
		}
		if g.IsMemberReferenced(req.Msg.MemberID) {
			return failedPrecondition("member %s is involved in transactions or payments", req.Msg.MemberID)
		}
		members := g.Members[:0]
		for _, m := range g.Members {
			if m.ID != req.Msg.MemberID {
				members = append(members, m)
			}
		}
		g.Members = members
		return nil
	})
	if err != nil {
		slog.Error("RemoveMember failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Member removed", "group_id", group.ID, "member_id", req.Msg.MemberID)

	return connect.NewResponse(&api.RemoveMemberResponse{Group: toAPIGroup(group)}), nil
}
