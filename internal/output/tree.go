package output

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// DescriptionColumn is the column descriptions are aligned to.
	DescriptionColumn = 30
)

// FileEntry is one path shown in a file tree.
type FileEntry struct {
	// Path is relative to the tree root, slash or OS separated.
	Path string

	// Description is shown next to the entry (optional).
	Description string

	// IsDir marks empty directories that have no file entries below them.
	IsDir bool
}

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders a file tree rooted at rootName with descriptions
// aligned at DescriptionColumn. Directories sort before files.
func RenderFileTree(rootName string, entries []FileEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &TreeNode{
		Name:  rootName,
		IsDir: true,
	}

	for _, e := range entries {
		parts := strings.Split(strings.Trim(filepath.ToSlash(e.Path), "/"), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{
					Name:  part,
					IsDir: !isLast || e.IsDir,
				}
				current.Children = append(current.Children, child)
			}

			if isLast && e.Description != "" {
				child.Description = e.Description
			}

			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

// sortTree recursively sorts tree nodes (directories first, then alphabetically).
func sortTree(node *TreeNode) {
	if len(node.Children) == 0 {
		return
	}

	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleBold.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}

		line := prefix + connector + name

		if node.Description != "" {
			padding := DescriptionColumn - lipgloss.Width(line)
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += StyleDim.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childIsLast := i == len(node.Children)-1

		var childPrefix string
		switch {
		case isRoot:
			childPrefix = ""
		case isLast:
			childPrefix = prefix + treeSpace
		default:
			childPrefix = prefix + treeVert
		}

		renderNode(sb, child, childPrefix, false, childIsLast)
	}
}
