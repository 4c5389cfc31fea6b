package manifest

import (
	"fmt"

	"github.com/frontend-forge/controller/api/v1alpha1"
	ferrors "github.com/frontend-forge/controller/pkg/errors"
)

const (
	placementGlobal    = "global"
	placementCluster   = "cluster"
	placementWorkspace = "workspace"
)

var routePrefixes = map[string]string{
	placementCluster:   "/clusters/:cluster",
	placementWorkspace: "/workspaces/:workspace",
	placementGlobal:    "",
}

func renderV1(fi *v1alpha1.FrontendIntegration) (*Manifest, error) {
	placements, err := dedupePlacements(fi.Spec.Menu.Placements)
	if err != nil {
		return nil, err
	}

	displayName := fi.Spec.DisplayName
	if displayName == "" {
		displayName = fi.Name
	}

	m := &Manifest{
		Version:     "v1",
		Name:        fi.Name,
		DisplayName: displayName,
		Routes:      make([]Route, 0, len(placements)),
		Menus:       make([]Menu, 0, len(placements)),
		Pages:       make([]Page, 0, len(placements)),
		Build: Build{
			Target:     "kubesphere-extension",
			ModuleName: fi.Name,
			Systemjs:   true,
		},
	}

	for _, p := range placements {
		pageID := fi.Name + "-" + p

		m.Routes = append(m.Routes, Route{
			Path:   routePrefixes[p] + "/frontendintegrations/" + fi.Name + "/" + fi.Spec.Routing.Path,
			PageID: pageID,
		})

		m.Menus = append(m.Menus, Menu{
			Parent: p,
			Name:   "frontendintegrations/" + fi.Name + "/" + fi.Spec.Routing.Path,
			Title:  displayName,
			Icon:   "GridDuotone",
			Order:  999,
		})

		page, err := renderPage(fi, pageID, displayName, p)
		if err != nil {
			return nil, err
		}
		m.Pages = append(m.Pages, *page)
	}

	return m, nil
}

// dedupePlacements preserves first-seen order while removing duplicates,
// and rejects any placement outside {global, cluster, workspace} per the
// renderer's placement-validation rule.
func dedupePlacements(placements []string) ([]string, error) {
	seen := make(map[string]bool, len(placements))
	out := make([]string, 0, len(placements))
	for _, p := range placements {
		switch p {
		case placementGlobal, placementCluster, placementWorkspace:
		default:
			return nil, ferrors.NewKindError(ferrors.UnsupportedPlacement, fmt.Sprintf("unsupported menu placement %q", p))
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

func renderPage(fi *v1alpha1.FrontendIntegration, pageID, displayName, placement string) (*Page, error) {
	page := &Page{
		ID:             pageID,
		EntryComponent: pageID,
		Meta: PageMeta{
			Path:  "/" + pageID,
			Title: displayName,
		},
	}

	switch fi.Spec.Integration.Type {
	case "iframe":
		renderIframePage(fi, page)
	case "crd":
		renderCrdPage(fi, page, placement)
	default:
		return nil, ferrors.New("frontend integration type must be \"crd\" or \"iframe\"")
	}

	return page, nil
}

func renderIframePage(fi *v1alpha1.FrontendIntegration, page *Page) {
	url := ""
	if fi.Spec.Integration.Iframe != nil {
		url = fi.Spec.Integration.Iframe.URL
		if url == "" {
			url = fi.Spec.Integration.Iframe.Src
		}
	}

	page.Root = ComponentNode{
		ID:   page.ID + "-root",
		Type: "Iframe",
		Props: map[string]interface{}{
			"FRAME_URL": url,
		},
		Meta: map[string]interface{}{
			"title": "Iframe",
			"scope": true,
		},
	}
}

func renderCrdPage(fi *v1alpha1.FrontendIntegration, page *Page, placement string) {
	crd := fi.Spec.Integration.Crd
	if crd == nil {
		crd = &v1alpha1.CrdIntegration{}
	}

	columns := normalizeColumns(fi.Spec.Columns)

	columnsSource := DataSource{
		ID:   "columns",
		Type: "crd-columns",
		Config: map[string]interface{}{
			"COLUMNS_CONFIG": columns,
			"HOOK_NAME":      "useCrdColumns",
		},
	}

	pageStateSource := DataSource{
		ID:   "pageState",
		Type: "crd-page-state",
		Config: map[string]interface{}{
			"PAGE_ID": page.ID,
			"CRD_CONFIG": map[string]interface{}{
				"apiVersion": crd.Version,
				"kind":       crd.Names.Kind,
				"plural":     crd.Names.Plural,
				"group":      crd.Group,
				"kapi":       true,
			},
			"SCOPE":     placement,
			"HOOK_NAME": "useCrdPageState",
		},
		Args: []Binding{
			{Type: "binding", Source: "columns", Bind: "columns"},
		},
	}

	page.DataSources = []DataSource{columnsSource, pageStateSource}

	apiVersion := crd.Group + "/" + crd.Version

	page.Root = ComponentNode{
		ID:   page.ID + "-root",
		Type: "CrdTable",
		Props: map[string]interface{}{
			"TABLE_KEY":       page.ID,
			"TITLE":           crd.Names.Kind,
			"PARAMS":          map[string]interface{}{},
			"REFETCH":         binding("pageState", "refetch", nil),
			"TOOLBAR_LEFT":    []interface{}{},
			"PAGE_CONTEXT":    binding("pageState", "pageContext", nil),
			"COLUMNS":         binding("columns", "columns", nil),
			"DATA":            binding("pageState", "data", nil),
			"IS_LOADING":      binding("pageState", "isLoading", false),
			"UPDATE":          binding("pageState", "update", nil),
			"DEL":             binding("pageState", "del", nil),
			"CREATE":          binding("pageState", "create", nil),
			"CREATE_INITIAL_VALUE": map[string]interface{}{
				"apiVersion": apiVersion,
				"kind":       crd.Names.Kind,
			},
		},
	}
}

func binding(source, bind string, defaultValue interface{}) Binding {
	return Binding{Type: "binding", Source: source, Bind: bind, DefaultValue: defaultValue}
}

// normalizeColumns hoists render.format into render.payload.format (and
// drops the top-level format), guaranteeing a payload object exists.
func normalizeColumns(columns []v1alpha1.Column) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(columns))
	for _, c := range columns {
		entry := map[string]interface{}{
			"name": c.Name,
		}
		if c.Title != "" {
			entry["title"] = c.Title
		}

		payload := map[string]interface{}{}
		if c.Render != nil {
			for k, v := range c.Render.Payload {
				payload[k] = v
			}
			if c.Render.Format != "" {
				payload["format"] = c.Render.Format
			}
		}
		entry["render"] = map[string]interface{}{"payload": payload}

		out = append(out, entry)
	}
	return out
}
