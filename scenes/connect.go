package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/skyloft/skywatch/config"
	"github.com/skyloft/skywatch/network"
	"github.com/skyloft/skywatch/shared/netconfig"
	"github.com/skyloft/skywatch/systems"
	"github.com/skyloft/skywatch/ui"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ConnectScene shows the feed address form and drives the join handshake.
type ConnectScene struct {
	sceneChanger SceneChanger
	connectUI    *ui.ConnectUI
	netClient    *network.Client
	once         sync.Once
}

func NewConnectScene(sc SceneChanger) *ConnectScene {
	return &ConnectScene{
		sceneChanger: sc,
	}
}

func (s *ConnectScene) Update() {
	s.once.Do(s.configure)

	s.connectUI.Update()

	if s.netClient == nil {
		return
	}

	switch s.netClient.State() {
	case network.StateJoinedFeed:
		s.connectUI.SetStatus("Joined! Loading feed...")
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewViewerScene(s.sceneChanger, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.connectUI.SetStatus(errMsg)
		s.connectUI.SetConnecting(false)
		s.netClient.Disconnect()
		s.netClient = nil

	case network.StateConnecting:
		s.connectUI.SetStatus("Connecting...")

	case network.StateConnected:
		s.connectUI.SetStatus("Connected, joining feed...")

	case network.StateDisconnected:
		s.connectUI.SetStatus("Disconnected")
		s.connectUI.SetConnecting(false)
		s.netClient = nil
	}
}

func (s *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 22, 30, 255})
	s.connectUI.UI.Draw(screen)
}

func (s *ConnectScene) configure() {
	s.connectUI = ui.NewConnectUI(func(address string) { s.onConnect(address) })

	address := cfg.Net.DefaultServerAddress
	if saved, err := systems.LoadSettings(); err == nil && saved != nil && saved.ServerAddress != "" {
		address = saved.ServerAddress
	}
	s.connectUI.SetAddress(address)
}

func (s *ConnectScene) onConnect(address string) {
	if s.netClient != nil {
		s.netClient.Disconnect()
	}

	s.connectUI.SetStatus("Connecting...")
	s.connectUI.SetConnecting(true)

	saved, _ := systems.LoadSettings()
	if saved == nil {
		saved = &systems.SavedSettings{}
	}
	saved.ServerAddress = address
	_ = systems.SaveSettings(saved)

	s.netClient = network.NewClient()
	s.netClient.Connect(address, netconfig.ProtocolVersion, cfg.Net.ClientName)
}
