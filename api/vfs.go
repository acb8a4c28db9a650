package api

// VirtualNode is a file or directory in a VirtualFilesystem
type VirtualNode interface {
	// Path returns the absolute slash separated path of the node within its file system
	Path() string

	Exists() bool

	IsDir() bool
}

// Visitor is called once for each node of a virtual file system tree
type Visitor interface {
	Visit(node VirtualNode)
}

// VirtualFilesystem is a pluggable file system abstraction. Pattern resolution against
// resources of KindVirtual is only performed when one is available.
type VirtualFilesystem interface {
	// Node returns the node for the given path. The node may not exist.
	Node(path string) VirtualNode

	// Visit calls the visitor for every node below the given root, the root excluded.
	Visit(root VirtualNode, visitor Visitor) error

	// Resource wraps the given node as a Resource of KindVirtual.
	Resource(node VirtualNode) Resource
}
