package adapter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binding-generator/binding"
	"binding-generator/environment"
)

var (
	_ binding.Adapter              = (*FileInbound)(nil)
	_ binding.Adapter              = (*FileOutbound)(nil)
	_ binding.Adapter              = (*WcfBasicHttpInbound)(nil)
	_ binding.Adapter              = (*WcfBasicHttpOutbound)(nil)
	_ binding.Adapter              = (*SqlInbound)(nil)
	_ binding.Adapter              = (*SqlOutbound)(nil)
	_ binding.EnvironmentOverrider = (*FileInbound)(nil)
	_ binding.EnvironmentOverrider = (*SqlOutbound)(nil)
)

func TestCapabilities(t *testing.T) {
	assert.Equal(t, "11", FileProtocol.Capabilities.String())
	assert.Equal(t, "899", WcfBasicHttpProtocol.Capabilities.String())
	assert.Equal(t, "651", WcfSqlProtocol.Capabilities.String())
	assert.True(t, WcfBasicHttpProtocol.Capabilities.Has(binding.CapabilityReceiveIsolated))
	assert.False(t, FileProtocol.Capabilities.Has(binding.CapabilityReceiveIsolated))
}

func TestFileInbound(t *testing.T) {
	a := NewFileInbound(`C:\Files\Drops\`, "*.xml")
	d := environment.For(environment.Development)

	address, err := a.Address(d)
	require.NoError(t, err)
	assert.Equal(t, `C:\Files\Drops\*.xml`, address)

	data, err := a.TransportTypeData(d)
	require.NoError(t, err)
	assert.Equal(t,
		`<CustomProps><BatchSize vt="19">20</BatchSize><FileMask vt="8">*.xml</FileMask>`+
			`<FileNetFailRetryCount vt="19">5</FileNetFailRetryCount><FileNetFailRetryInt vt="19">5</FileNetFailRetryInt>`+
			`<PollingInterval vt="19">60000</PollingInterval><RenameReceivedFiles vt="11">0</RenameReceivedFiles></CustomProps>`,
		data)

	require.NoError(t, a.Validate())
}

func TestFileInbound_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FileInbound)
		want   string
	}{
		{"folder", func(a *FileInbound) { a.ReceiveFolder = "" }, "receive folder is not defined"},
		{"mask", func(a *FileInbound) { a.FileMask = "" }, "file mask is not defined"},
		{"batch", func(a *FileInbound) { a.BatchSize = 0 }, "batch size must be positive"},
		{"polling", func(a *FileInbound) { a.PollingInterval = 0 }, "polling interval must be at least one millisecond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewFileInbound(`C:\in`, "*.xml")
			tt.mutate(a)
			assert.EqualError(t, a.Validate(), tt.want)
		})
	}
}

func TestFileOutbound(t *testing.T) {
	a := NewFileOutbound(`C:\Files\Out`)
	a.UseTempFileOnWrite = true

	address, err := a.Address(environment.Deployment{})
	require.NoError(t, err)
	assert.Equal(t, `C:\Files\Out\%MessageID%.xml`, address)

	data, err := a.TransportTypeData(environment.Deployment{})
	require.NoError(t, err)
	assert.Contains(t, data, `<CopyMode vt="19">2</CopyMode>`)
	assert.Contains(t, data, `<UseTempFileOnWrite vt="11">-1</UseTempFileOnWrite>`)

	a.CopyMode = 7
	assert.EqualError(t, a.Validate(), "copy mode is unknown")
}

func TestOverrides_AppliedInOrder(t *testing.T) {
	a := NewFileOutbound(`C:\out`)
	a.OnEnvironment(func(d environment.Deployment) error {
		if d.Environment.IsPreProductionUpwards() {
			a.DestinationFolder = `\\prd-share\out`
		}

		return nil
	})
	a.OnEnvironment(func(environment.Deployment) error {
		a.FileName += ".bak"
		return nil
	})

	require.NoError(t, a.ApplyEnvironmentOverrides(environment.For(environment.Production)))
	assert.Equal(t, `\\prd-share\out`, a.DestinationFolder)
	assert.Equal(t, "%MessageID%.xml.bak", a.FileName)
}

func TestOverrides_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	var o Overrides
	o.OnEnvironment(func(environment.Deployment) error { calls++; return boom })
	o.OnEnvironment(func(environment.Deployment) error { calls++; return nil })

	err := o.ApplyEnvironmentOverrides(environment.Deployment{})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWcfBasicHttp(t *testing.T) {
	in := NewWcfBasicHttpInbound("/Orders/Service.svc")
	in.UseSSO = true

	data, err := in.TransportTypeData(environment.Deployment{})
	require.NoError(t, err)
	assert.Contains(t, data, `<MaxReceivedMessageSize vt="3">65536</MaxReceivedMessageSize>`)
	assert.Contains(t, data, `<OpenTimeout vt="8">00:01:00</OpenTimeout>`)
	assert.Contains(t, data, `<UseSSO vt="11">-1</UseSSO>`)
	require.NoError(t, in.Validate())

	in.Path = "Orders/Service.svc"
	assert.Error(t, in.Validate())

	out := NewWcfBasicHttpOutbound("http://partner/orders.svc", "Submit")
	require.NoError(t, out.Validate())

	out.SecurityMode = SecurityTransport
	assert.EqualError(t, out.Validate(), "transport security requires an https url")

	out.URL = "ftp://partner/orders"
	assert.Error(t, out.Validate())
}

func TestSqlInbound(t *testing.T) {
	conn := SqlConnection{Server: "sqlsrv", Database: "Orders"}
	a := NewSqlInbound(conn, "Pending", `SELECT * FROM Orders WHERE Status < 2`)

	address, err := a.Address(environment.Deployment{})
	require.NoError(t, err)
	assert.Equal(t, "mssql://sqlsrv//Orders?InboundId=Pending", address)

	data, err := a.TransportTypeData(environment.Deployment{})
	require.NoError(t, err)
	assert.Contains(t, data, `<BindingType vt="8">sqlBinding</BindingType>`)
	// escaped once as an attribute value and once more as property text
	assert.Contains(t, data, `pollingStatement=&#34;SELECT * FROM Orders WHERE Status &amp;lt; 2&#34;`)
	assert.Contains(t, data, `pollingIntervalInSeconds=&#34;30&#34;`)
	require.NoError(t, a.Validate())

	a.PollingInterval = 10 * time.Millisecond
	assert.EqualError(t, a.Validate(), "polling interval must be at least one second")

	a.Connection.Database = ""
	assert.EqualError(t, a.Validate(), "database is not defined")
}

func TestTimeSpan(t *testing.T) {
	assert.Equal(t, "00:00:30", timeSpan(30*time.Second))
	assert.Equal(t, "01:30:00", timeSpan(90*time.Minute))
	assert.Equal(t, "23:59:59", timeSpan(24*time.Hour-time.Second))
	assert.Equal(t, "1.00:00:00", timeSpan(24*time.Hour))
	assert.Equal(t, "1.02:00:01", timeSpan(26*time.Hour+time.Second))
	assert.Equal(t, "3.01:30:00", timeSpan(73*time.Hour+30*time.Minute))
}
