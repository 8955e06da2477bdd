// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/tfview/math32"
)

// Node is an element of the scene graph. Renderable content is supplied
// by the rendering engine; the scene only needs its name and pose.
type Node interface {

	// AsNodeBase returns the [NodeBase] for this Node.
	AsNodeBase() *NodeBase
}

// NodeBase provides the core implementation of the [Node] interface.
type NodeBase struct {

	// Name is the name of the node.
	Name string

	// Pose is the position and orientation of the node relative to its parent.
	Pose Pose
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// Group collects individual elements in a scene.
// It has a transform that applies to all nodes under it.
type Group struct {
	NodeBase

	// Children are the nodes under this group, in order.
	Children []Node
}

// NewGroup returns a new Group with the given name and an identity pose.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Reset()
	return gp
}

// Add appends the given node to the children of the group.
func (gp *Group) Add(n Node) {
	gp.Children = append(gp.Children, n)
}

// Remove removes the given node from the children of the group,
// returning false if it is not a child.
func (gp *Group) Remove(n Node) bool {
	i := slices.Index(gp.Children, n)
	if i < 0 {
		return false
	}
	gp.Children = slices.Delete(gp.Children, i, i+1)
	return true
}

// Contains returns true if the given node is a child of the group.
func (gp *Group) Contains(n Node) bool {
	return slices.Contains(gp.Children, n)
}

// SetPos sets the [Pose.Pos] position of the group
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

// SetEulerRotation sets the [Pose.Quat] rotation of the group,
// from euler angles in degrees
func (gp *Group) SetEulerRotation(x, y, z float32) *Group {
	gp.Pose.SetEulerRotation(x, y, z)
	return gp
}

// UpdateWorldMatrix updates the local and world matrices of the given node
// and, for a group, of everything under it. parWorld is the world matrix
// of the parent, or nil for a top-level node.
func UpdateWorldMatrix(n Node, parWorld *math32.Matrix4) {
	nb := n.AsNodeBase()
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
	gp, ok := n.(*Group)
	if !ok {
		return
	}
	for _, c := range gp.Children {
		UpdateWorldMatrix(c, &nb.Pose.WorldMatrix)
	}
}
