package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/workers"
	"github.com/MKhiriev/go-sync-client/models"
)

const maxLogLines = 8

// progressModel is the single page of the view:
// 1) listens to engine events and worker results
// 2) starts a round on demand
// 3) creates and copies sharing invitations
type progressModel struct {
	ctx       context.Context
	trigger   SyncTrigger
	inviter   Inviter
	sources   Sources
	copyText  func(string) error
	buildInfo models.AppBuildInfo

	sync           syncModel
	sharingGroupID models.SharingGroupID
	sharingGroups  []models.SharingGroupID

	plannedDownloads int
	plannedDeletions int
	plannedUploads   int
	downloaded       int
	rounds           int
	lastResult       *workers.SyncResult

	log     []string
	status  string
	errMsg  string
	overlay *errorOverlayModel

	showBuildInfo bool
	inviting      bool
	quitByUser    bool
}

func newProgressModel(ctx context.Context, trigger SyncTrigger, inviter Inviter, sources Sources, sharingGroupID models.SharingGroupID, buildInfo models.AppBuildInfo) progressModel {
	return progressModel{
		ctx:            ctx,
		trigger:        trigger,
		inviter:        inviter,
		sources:        sources,
		copyText:       clipboard.WriteAll,
		buildInfo:      buildInfo,
		sync:           newSyncModel(),
		sharingGroupID: sharingGroupID,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.sync.spinner.Tick, waitForEvent(m.sources.Events), waitForResult(m.sources.Results))
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sync.spinner, cmd = m.sync.spinner.Update(msg)
		return m, cmd

	case eventMsg:
		m.applyEvent(msg.event)
		return m, waitForEvent(m.sources.Events)

	case syncResultMsg:
		m.applyResult(msg.result)
		return m, waitForResult(m.sources.Results)

	case invitationMsg:
		m.inviting = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeSyncError(msg.err)}
			return m, nil
		}
		if err := m.copyText(msg.code); err != nil {
			m.status = "Код приглашения: " + msg.code
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Код приглашения скопирован: " + msg.code
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func (m progressModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.esc, keys.enter) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true

	case key.Matches(msg, keys.sync):
		if m.sync.running || m.trigger == nil {
			return m, nil
		}
		m.sync.running = true
		m.status = "Синхронизация..."
		m.errMsg = ""
		return m, tea.Batch(m.sync.spinner.Tick, m.cmdSync())

	case key.Matches(msg, keys.invite):
		if m.inviting || m.inviter == nil {
			return m, nil
		}
		if m.sharingGroupID == 0 {
			m.status = "Группа ещё не известна"
			return m, nil
		}
		m.inviting = true
		m.status = "Создание приглашения..."
		return m, m.cmdInvite()
	}

	return m, nil
}

func (m *progressModel) applyEvent(ev events.Event) {
	switch ev.Kind {
	case events.KindWillStartDownloads:
		m.plannedDownloads = ev.NumberContentDownloads
		m.plannedDeletions = ev.NumberDownloadDeletions
		m.downloaded = 0
		m.appendLog(fmt.Sprintf("к скачиванию: %d, к удалению: %d", ev.NumberContentDownloads, ev.NumberDownloadDeletions))
	case events.KindWillStartUploads:
		m.plannedUploads = ev.NumberUploads
		m.appendLog(fmt.Sprintf("к выгрузке: %d", ev.NumberUploads))
	case events.KindHaveSharingGroupIDs:
		m.sharingGroups = ev.SharingGroupIDs
		if m.sharingGroupID == 0 && len(ev.SharingGroupIDs) > 0 {
			m.sharingGroupID = ev.SharingGroupIDs[0]
		}
	case events.KindSingleFileDownloadComplete:
		m.downloaded++
		m.appendLog(fmt.Sprintf("%s %s", ev.Operation, fitText(ev.FileUUID, 36)))
	case events.KindMasterVersionChanged:
		m.appendLog(fmt.Sprintf("группа %d: новая версия %d", ev.SharingGroupID, ev.MasterVersion))
	}
}

func (m *progressModel) applyResult(r workers.SyncResult) {
	m.rounds++
	m.sync.running = false
	m.lastResult = &r

	if m.sharingGroupID == 0 && r.SharingGroupID != 0 {
		m.sharingGroupID = r.SharingGroupID
	}

	if r.Err != nil {
		m.errMsg = humanizeSyncError(r.Err)
		m.status = ""
		return
	}

	m.errMsg = ""
	m.status = "Синхронизация завершена"
}

func (m *progressModel) appendLog(line string) {
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m progressModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder

	b.WriteString(m.sync.View())
	b.WriteString("\n\n")

	if m.sharingGroupID != 0 {
		fmt.Fprintf(&b, "Группа:    %d\n", m.sharingGroupID)
	} else {
		b.WriteString("Группа:    -\n")
	}
	fmt.Fprintf(&b, "Скачано:   %d из %d\n", m.downloaded, m.plannedDownloads)
	fmt.Fprintf(&b, "Удалений:  %d\n", m.plannedDeletions)
	fmt.Fprintf(&b, "Выгрузок:  %d\n", m.plannedUploads)

	if r := m.lastResult; r != nil && r.Err == nil {
		fmt.Fprintf(&b, "Раунд %d: скачано %d, удалено %d, выгружено %d (%s)\n",
			m.rounds, r.Report.Downloaded, r.Report.DeletionsApplied, r.Report.Uploaded, r.FinishedAt.Format("15:04:05"))
	}

	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	if len(m.log) > 0 {
		b.WriteString("\nСобытия:\n")
		for _, line := range m.log {
			b.WriteString(helpStyle.Render("  "+line) + "\n")
		}
	}

	return renderPage(
		"СИНХРОНИЗАЦИЯ",
		strings.TrimRight(b.String(), "\n"),
		"s: синхр. │ i: приглашение │ v: версия │ q: выход",
	)
}

func (m progressModel) cmdSync() tea.Cmd {
	trigger := m.trigger
	return func() tea.Msg {
		trigger.Run()
		return nil
	}
}

func (m progressModel) cmdInvite() tea.Cmd {
	ctx, inviter, sg := m.ctx, m.inviter, m.sharingGroupID
	return func() tea.Msg {
		code, err := inviter.CreateSharingInvitation(ctx, models.PermissionWrite, sg)
		return invitationMsg{code: code, err: err}
	}
}

func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return sourceClosedMsg{}
		}
		return eventMsg{event: ev}
	}
}

func waitForResult(ch <-chan workers.SyncResult) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return sourceClosedMsg{}
		}
		return syncResultMsg{result: r}
	}
}
