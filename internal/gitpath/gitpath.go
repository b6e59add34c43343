// Package gitpath contains consts and methods to work with paths inside
// the .git directory
package gitpath

// .git/ files and directories, relative to the .git directory
const (
	DotGitPath      = ".git"
	ConfigPath      = "config"
	DescriptionPath = "description"
	HEADPath        = "HEAD"
	ObjectsPath     = "objects"
	ObjectsInfoPath = ObjectsPath + "/info"
	ObjectsPackPath = ObjectsPath + "/pack"
	RefsPath        = "refs"
	RefsTagsPath    = RefsPath + "/tags"
	RefsHeadsPath   = RefsPath + "/heads"
)
