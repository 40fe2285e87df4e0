// Package category maps file extensions to category folder names.
//
// Lookups are case-insensitive and total: extensions without a mapping,
// and files without an extension, resolve to the Other category. The map
// is loaded once per run and never mutated afterwards.
package category

import (
	"sort"
	"strings"
)

// Other is the fallback category for unmapped or missing extensions.
const Other = "Other"

// Map associates lower-cased extensions (leading dot included) with
// category names.
type Map map[string]string

// ForExtension resolves the category for an extension. Empty or unknown
// extensions resolve to Other.
func (m Map) ForExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return Other
	}
	if name, ok := m[ext]; ok {
		return name
	}
	return Other
}

// Names returns the unique category names in sorted order, with Other
// appended last so selection menus always offer the fallback.
func (m Map) Names() []string {
	seen := make(map[string]struct{}, len(m))
	names := make([]string, 0, len(m))
	for _, name := range m {
		if name == Other {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, Other)
}

// Merge returns a copy of m with the overrides applied. Override keys are
// lower-cased and given a leading dot when missing, so TOML tables can use
// either "pdf" or ".pdf".
func (m Map) Merge(overrides map[string]string) Map {
	merged := make(Map, len(m)+len(overrides))
	for ext, name := range m {
		merged[ext] = name
	}
	for ext, name := range overrides {
		ext = strings.ToLower(strings.TrimSpace(ext))
		name = strings.TrimSpace(name)
		if ext == "" || name == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		merged[ext] = name
	}
	return merged
}

// BuiltIn returns the default extension table.
func BuiltIn() Map {
	return Map{
		".pdf":  "Documents",
		".doc":  "Documents",
		".docx": "Documents",
		".odt":  "Documents",
		".rtf":  "Documents",
		".txt":  "Documents",
		".md":   "Documents",
		".csv":  "Documents",
		".xls":  "Documents",
		".xlsx": "Documents",
		".ppt":  "Documents",
		".pptx": "Documents",
		".epub": "Documents",

		".jpg":  "Images",
		".jpeg": "Images",
		".png":  "Images",
		".gif":  "Images",
		".bmp":  "Images",
		".svg":  "Images",
		".webp": "Images",
		".tiff": "Images",
		".heic": "Images",
		".ico":  "Images",

		".mp4":  "Videos",
		".mkv":  "Videos",
		".avi":  "Videos",
		".mov":  "Videos",
		".wmv":  "Videos",
		".flv":  "Videos",
		".webm": "Videos",
		".m4v":  "Videos",
		".mpg":  "Videos",
		".mpeg": "Videos",

		".mp3":  "Audio",
		".wav":  "Audio",
		".flac": "Audio",
		".aac":  "Audio",
		".ogg":  "Audio",
		".opus": "Audio",
		".m4a":  "Audio",
		".wma":  "Audio",

		".zip": "Archives",
		".rar": "Archives",
		".7z":  "Archives",
		".tar": "Archives",
		".gz":  "Archives",
		".bz2": "Archives",
		".xz":  "Archives",
		".iso": "Archives",

		".go":   "Code",
		".py":   "Code",
		".js":   "Code",
		".ts":   "Code",
		".html": "Code",
		".css":  "Code",
		".json": "Code",
		".xml":  "Code",
		".yaml": "Code",
		".yml":  "Code",
		".toml": "Code",
		".sh":   "Code",
		".sql":  "Code",
		".c":    "Code",
		".h":    "Code",
		".cpp":  "Code",
		".java": "Code",
		".rs":   "Code",

		".exe":      "Executables",
		".msi":      "Executables",
		".apk":      "Executables",
		".deb":      "Executables",
		".rpm":      "Executables",
		".dmg":      "Executables",
		".appimage": "Executables",

		".ttf":   "Fonts",
		".otf":   "Fonts",
		".woff":  "Fonts",
		".woff2": "Fonts",
	}
}
