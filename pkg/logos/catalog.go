package logos

import "net/url"

const (
	// Version identifies the catalog revision.
	Version = "1.0.0"

	// RepositoryURL is the GitHub repository hosting the assets.
	RepositoryURL = "https://github.com/jkwinnersinvestment/JKWI-WEB"

	// BaseURL is the raw-content root all download URLs hang off.
	BaseURL = "https://raw.githubusercontent.com/jkwinnersinvestment/JKWI-WEB/main/JKWI%20LOGO%20PNG"
)

// logoURL builds the raw download URL for a catalog filename.
func logoURL(filename string) string {
	return BaseURL + "/" + url.PathEscape(filename)
}

// catalog mirrors the asset files checked into the repository. Most
// logos come as a main/white pair; URLs are derived from the filenames
// when the registry is built.
var catalog = []Logo{
	// Company
	{
		Name:         "jk_winners_investment_main",
		Category:     CategoryCompany,
		Filename:     "JK WINNERS INVESTMENT LOGO.png",
		Description:  "Main company logo for JK Winners Investment",
		ColorVariant: "full_color",
	},
	{
		Name:         "jk_winners_investment_white",
		Category:     CategoryCompany,
		Filename:     "JK WINNERS INVESTMENT LOGO WHITE.png",
		Description:  "White variant of JK Winners Investment logo",
		ColorVariant: "white",
	},

	// Divisions
	{
		Name:        "jkwi_foundation",
		Category:    CategoryDivision,
		Filename:    "JKWI FOUNDATION LOGO.png",
		Description: "JKWI Foundation division logo",
	},
	{
		Name:         "jkwi_foundation_white",
		Category:     CategoryDivision,
		Filename:     "JKWI FOUNDATION LOGO WHITE.png",
		Description:  "White variant of JKWI Foundation logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_innovation_hub",
		Category:    CategoryDivision,
		Filename:    "JKWI INNOVATION HUB LOGO.png",
		Description: "JKWI Innovation Hub division logo",
	},
	{
		Name:         "jkwi_innovation_hub_white",
		Category:     CategoryDivision,
		Filename:     "JKWI INNOVATION HUB LOGO WHITE.png",
		Description:  "White variant of JKWI Innovation Hub logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_properties",
		Category:    CategoryDivision,
		Filename:    "JKWI PROPERTIES LOGO.png",
		Description: "JKWI Properties division logo",
	},
	{
		Name:         "jkwi_properties_white",
		Category:     CategoryDivision,
		Filename:     "JKWI PROPERTIES LOGO WHITE.png",
		Description:  "White variant of JKWI Properties logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_ventures",
		Category:    CategoryDivision,
		Filename:    "JKWI VENTURES LOGO.png",
		Description: "JKWI Ventures division logo",
	},
	{
		Name:         "jkwi_ventures_white",
		Category:     CategoryDivision,
		Filename:     "JKWI VENTURES LOGO WHITE.png",
		Description:  "White variant of JKWI Ventures logo",
		ColorVariant: "white",
	},

	// Partners
	{
		Name:        "africa_investment_trade_expo",
		Category:    CategoryPartners,
		Filename:    "AFRICA INVESTMENT AND TRADE EXPO LOGO.png",
		Description: "Africa Investment and Trade Expo partner logo",
	},
	{
		Name:         "africa_investment_trade_expo_white",
		Category:     CategoryPartners,
		Filename:     "AFRICA INVESTMENT AND TRADE EXPO LOGO WHITE.png",
		Description:  "White variant of Africa Investment and Trade Expo logo",
		ColorVariant: "white",
	},
	{
		Name:        "black_owned_business_network",
		Category:    CategoryPartners,
		Filename:    "BLACK OWNED BUSINESS NETWORK LOGO.png",
		Description: "Black Owned Business Network partner logo",
	},
	{
		Name:         "black_owned_business_network_white",
		Category:     CategoryPartners,
		Filename:     "BLACK OWNED BUSINESS NETWORK LOGO WHITE.png",
		Description:  "White variant of Black Owned Business Network logo",
		ColorVariant: "white",
	},
	{
		Name:        "bnb_exchange",
		Category:    CategoryPartners,
		Filename:    "BNB EXCHANGE LOGO.png",
		Description: "BNB Exchange partner logo",
	},
	{
		Name:         "bnb_exchange_white",
		Category:     CategoryPartners,
		Filename:     "BNB EXCHANGE LOGO WHITE.png",
		Description:  "White variant of BNB Exchange logo",
		ColorVariant: "white",
	},
	{
		Name:        "corporate_bridge",
		Category:    CategoryPartners,
		Filename:    "CORPORATE BRIDGE LOGO.png",
		Description: "Corporate Bridge partner logo",
	},
	{
		Name:         "corporate_bridge_white",
		Category:     CategoryPartners,
		Filename:     "CORPORATE BRIDGE LOGO WHITE.png",
		Description:  "White variant of Corporate Bridge logo",
		ColorVariant: "white",
	},
	{
		Name:        "investment_bridge",
		Category:    CategoryPartners,
		Filename:    "INVESTMENT BRIDGE LOGO.png",
		Description: "Investment Bridge partner logo",
	},
	{
		Name:         "investment_bridge_white",
		Category:     CategoryPartners,
		Filename:     "INVESTMENT BRIDGE LOGO WHITE.png",
		Description:  "White variant of Investment Bridge logo",
		ColorVariant: "white",
	},
	{
		Name:        "jk_winners_investment_platform",
		Category:    CategoryPartners,
		Filename:    "JK WINNERS INVESTMENT PLATFORM LOGO.png",
		Description: "JK Winners Investment Platform logo",
	},
	{
		Name:         "jk_winners_investment_platform_white",
		Category:     CategoryPartners,
		Filename:     "JK WINNERS INVESTMENT PLATFORM LOGO WHITE.png",
		Description:  "White variant of JK Winners Investment Platform logo",
		ColorVariant: "white",
	},

	// Investors
	{
		Name:        "jkwi_angel_investors",
		Category:    CategoryInvestors,
		Filename:    "JKWI ANGEL INVESTORS LOGO.png",
		Description: "JKWI Angel Investors logo",
	},
	{
		Name:         "jkwi_angel_investors_white",
		Category:     CategoryInvestors,
		Filename:     "JKWI ANGEL INVESTORS LOGO WHITE.png",
		Description:  "White variant of JKWI Angel Investors logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_crowd_funding",
		Category:    CategoryInvestors,
		Filename:    "JKWI CROWD FUNDING LOGO.png",
		Description: "JKWI Crowd Funding logo",
	},
	{
		Name:         "jkwi_crowd_funding_white",
		Category:     CategoryInvestors,
		Filename:     "JKWI CROWD FUNDING LOGO WHITE.png",
		Description:  "White variant of JKWI Crowd Funding logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_fund_managers",
		Category:    CategoryInvestors,
		Filename:    "JKWI FUND MANAGERS LOGO.png",
		Description: "JKWI Fund Managers logo",
	},
	{
		Name:         "jkwi_fund_managers_white",
		Category:     CategoryInvestors,
		Filename:     "JKWI FUND MANAGERS LOGO WHITE.png",
		Description:  "White variant of JKWI Fund Managers logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_investment_club",
		Category:    CategoryInvestors,
		Filename:    "JKWI INVESTMENT CLUB LOGO.png",
		Description: "JKWI Investment Club logo",
	},
	{
		Name:         "jkwi_investment_club_white",
		Category:     CategoryInvestors,
		Filename:     "JKWI INVESTMENT CLUB LOGO WHITE.png",
		Description:  "White variant of JKWI Investment Club logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_portfolio",
		Category:    CategoryInvestors,
		Filename:    "JKWI PORTFOLIO LOGO.png",
		Description: "JKWI Portfolio logo",
	},
	{
		Name:         "jkwi_portfolio_white",
		Category:     CategoryInvestors,
		Filename:     "JKWI PORTFOLIO LOGO WHITE.png",
		Description:  "White variant of JKWI Portfolio logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_private_equity",
		Category:    CategoryInvestors,
		Filename:    "JKWI PRIVATE EQUITY LOGO.png",
		Description: "JKWI Private Equity logo",
	},
	{
		Name:         "jkwi_private_equity_white",
		Category:     CategoryInvestors,
		Filename:     "JKWI PRIVATE EQUITY LOGO WHITE.png",
		Description:  "White variant of JKWI Private Equity logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_seed_fund",
		Category:    CategoryInvestors,
		Filename:    "JKWI SEED FUND LOGO.png",
		Description: "JKWI Seed Fund logo",
	},
	{
		Name:         "jkwi_seed_fund_white",
		Category:     CategoryInvestors,
		Filename:     "JKWI SEED FUND LOGO WHITE.png",
		Description:  "White variant of JKWI Seed Fund logo",
		ColorVariant: "white",
	},
	{
		Name:        "jkwi_venture_capital",
		Category:    CategoryInvestors,
		Filename:    "JKWI VENTURE CAPITAL LOGO.png",
		Description: "JKWI Venture Capital logo",
	},
	{
		Name:         "jkwi_venture_capital_white",
		Category:     CategoryInvestors,
		Filename:     "JKWI VENTURE CAPITAL LOGO WHITE.png",
		Description:  "White variant of JKWI Venture Capital logo",
		ColorVariant: "white",
	},
}
