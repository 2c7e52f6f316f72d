package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sigecs/ecs"
)

// EntityBrowser lists live entities with their signatures and component
// kinds, and shows the component data of the selected entity.
type EntityBrowser struct {
	kinds              *ecs.Kinds
	selectedEntityId   ecs.ID
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// NewEntityBrowser creates a browser that resolves signature bits to kind
// names through the given registry.
func NewEntityBrowser(kinds *ecs.Kinds, maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		kinds:              kinds,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(scene *ecs.Scene) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	filtered := eb.filteredEntities(scene)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Kinds")
		imgui.TableHeadersRow()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			entity := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID()
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", uint64(entity.Signature())))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(eb.kinds.Names(entity.Signature()), ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	eb.renderSelected(scene)

	imgui.End()
}

func (eb *EntityBrowser) filteredEntities(scene *ecs.Scene) []*ecs.Entity {
	filtered := make([]*ecs.Entity, 0, scene.Entities().Len())
	filterLower := strings.ToLower(eb.filterText)

	for entity := range scene.Entities().All() {
		if eb.filterText != "" {
			idStr := fmt.Sprintf("%d", entity.ID())
			sigStr := fmt.Sprintf("0x%x", uint64(entity.Signature()))
			kindsStr := strings.ToLower(strings.Join(eb.kinds.Names(entity.Signature()), " "))

			if !strings.Contains(idStr, filterLower) &&
				!strings.Contains(sigStr, filterLower) &&
				!strings.Contains(kindsStr, filterLower) {
				continue
			}
		}
		filtered = append(filtered, entity)
	}

	return filtered
}

func (eb *EntityBrowser) renderSelected(scene *ecs.Scene) {
	imgui.Separator()

	if eb.selectedEntityId == 0 {
		imgui.Text("No entity selected")
		return
	}

	entity, ok := scene.Entities().Get(eb.selectedEntityId)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", eb.selectedEntityId))
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", entity.ID()))
	imgui.Text(fmt.Sprintf("Signature: 0x%X", uint64(entity.Signature())))

	for i, component := range entity.Components() {
		label := fmt.Sprintf("%s##%d", component.Kind().Name(), i)
		if imgui.TreeNodeStr(label) {
			renderComponent(component)
			imgui.TreePop()
		}
	}
}

// renderComponent shows a component's fields read-only via reflection.
func renderComponent(component ecs.Component) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", component))
		return
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		imgui.BulletText(fmt.Sprintf("%s: %v", field.Name, val.Field(i).Interface()))
	}
}
