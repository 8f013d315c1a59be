package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"leveledit/internal/engine"

	"github.com/google/uuid"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	Position   [3]float32 `json:"position"`
	Rotation   [3]float32 `json:"rotation"`
	Scale      [3]float32 `json:"scale"`
	Selectable *bool      `json:"selectable,omitempty"`
}

// LoadScene reads a scene file. Units keep their saved IDs when present.
func LoadScene(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	scene := engine.NewScene(sf.Name)
	seen := make(map[uuid.UUID]bool, len(sf.Objects))
	for i, objDef := range sf.Objects {
		u := engine.NewUnit(objDef.Name)
		if objDef.ID != "" {
			id, err := uuid.Parse(objDef.ID)
			if err != nil {
				return nil, fmt.Errorf("object %d: bad id %q: %w", i, objDef.ID, err)
			}
			if seen[id] {
				return nil, fmt.Errorf("object %d: duplicate id %s", i, id)
			}
			seen[id] = true
			u.ID = id
		}
		u.Position = objDef.Position
		u.Rotation = objDef.Rotation

		// Default scale to 1 if zero
		if objDef.Scale != [3]float32{} {
			u.Scale = objDef.Scale
		}
		if objDef.Selectable != nil {
			u.Selectable = *objDef.Selectable
		}

		scene.Add(u)
	}

	return scene, nil
}

func SaveScene(path string, scene *engine.Scene) error {
	sf := SceneFile{Name: scene.Name, Objects: make([]ObjectDef, 0, scene.Len())}

	for _, u := range scene.Units() {
		objDef := ObjectDef{
			ID:       u.ID.String(),
			Name:     u.Name,
			Position: u.Position,
			Rotation: u.Rotation,
			Scale:    u.Scale,
		}
		if !u.Selectable {
			selectable := false
			objDef.Selectable = &selectable
		}
		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	return writeFileAtomic(path, data)
}

// writeFileAtomic replaces path only once the new contents are fully on disk.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write scene: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("write scene: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
