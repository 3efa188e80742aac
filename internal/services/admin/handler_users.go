package admin

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/listview"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/templates"
)

// HandleUsersPage renders the users page with the filter carried in the query.
func (h *Handler) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	filter := parseUserFilter(r)
	page := parsePage(r)
	if r.URL.Query().Get("page") == "" {
		if snap := h.users.For(sessionID(r)).Snapshot(); snap.Phase == listview.PhaseLoaded {
			page = snap.Page
		}
	}
	filterView := templates.UsersFilterView{
		Search: filter.Search,
		Roles:  roleOptions(filter.Role, loc),
		Page:   page,
	}
	renderPage(w, r, templates.UsersPage(h.pageContext(lang, loc, r), filterView, usersTableURL(page, filter)), loc.Sprintf("users.title"))
}

// HandleUsersTable renders one page of users narrowed by the filter. A filter
// submission for the page already held narrows it without another read.
func (h *Handler) HandleUsersTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	view := h.users.For(sessionID(r))
	filter := parseUserFilter(r)
	page := parsePage(r)

	snap := view.Snapshot()
	if r.URL.Query().Get("filter") == "" || snap.Phase != listview.PhaseLoaded || snap.Page != page {
		var err error
		snap, err = view.FetchPage(r.Context(), page)
		if h.handleViewError(w, r, err) {
			return
		}
	}

	refreshURL := usersTableURL(snap.Page, filter)
	state := tableState(templates.UsersTableID, refreshURL)
	state.Busy = snap.Busy
	state.Pagination = pagination(templates.UsersTableID, snap.Page, snap.TotalPages, func(page int) string {
		return usersTableURL(page, filter)
	})

	notice := noticeView(loc, snap.Notice)
	if notice != nil && snap.Phase == listview.PhaseError && len(snap.Items) == 0 {
		state.ErrorText = notice.Text
		notice = nil
	}

	visible := marketplace.FilterUsers(snap.Items, filter)
	state.Empty = len(visible) == 0 && state.ErrorText == ""
	state.EmptyText = loc.Sprintf("users.empty")
	if len(snap.Items) > 0 && filter.Active() {
		state.EmptyText = loc.Sprintf("users.no_match")
	}

	rows := make([]templates.UserRow, 0, len(visible))
	for _, user := range visible {
		rows = append(rows, templates.UserRow{
			ID:          user.ID,
			Name:        user.Name(),
			Email:       user.Email,
			RoleLabel:   roleLabel(user, loc),
			RoleVariant: roleVariant(user),
		})
	}
	renderFragment(w, r, http.StatusOK,
		templates.UsersTable(loc, templates.UsersTableView{State: state, Rows: rows}),
		templates.Toast(notice),
	)
}

// HandleUserDialog shows the held list record; users have no detail read.
func (h *Handler) HandleUserDialog(w http.ResponseWriter, r *http.Request, id string) {
	loc, _ := h.localizer(w, r)
	user, ok := h.users.For(sessionID(r)).Select(id)
	if !ok {
		user = marketplace.User{ID: id}
	}
	view := templates.UserDialogView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	if user.Role != "" {
		view.RoleLabel = roleLabel(user, loc)
		view.RoleVariant = roleVariant(user)
	}
	renderFragment(w, r, http.StatusOK, templates.UserDialog(loc, view))
}

func parseUserFilter(r *http.Request) marketplace.UserFilter {
	query := r.URL.Query()
	return marketplace.UserFilter{
		Search: strings.TrimSpace(query.Get("q")),
		Role:   strings.TrimSpace(query.Get("role")),
	}
}

func usersTableURL(page int, filter marketplace.UserFilter) string {
	return routepath.WithQuery(routepath.UsersTable, url.Values{
		"page": {strconv.Itoa(max(page, 1))},
		"q":    {filter.Search},
		"role": {filter.Role},
	})
}

func roleOptions(selected string, loc *message.Printer) []templates.RoleOption {
	if selected == "" {
		selected = marketplace.RoleFilterAll
	}
	selected = strings.ToUpper(selected)
	options := []templates.RoleOption{
		{Value: marketplace.RoleFilterAll, Label: loc.Sprintf("users.role_all")},
		{Value: marketplace.RoleAdmin, Label: loc.Sprintf("users.role.admin")},
		{Value: marketplace.RoleModerator, Label: loc.Sprintf("users.role.moderator")},
		{Value: marketplace.RoleUser, Label: loc.Sprintf("users.role.user")},
	}
	for i := range options {
		options[i].Selected = strings.ToUpper(options[i].Value) == selected
	}
	return options
}
