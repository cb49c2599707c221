package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Page titles
	message.SetString(lang, "title.loading", "Carregando")
	message.SetString(lang, "title.sign_in", "Entrar")
	message.SetString(lang, "title.sign_up", "Cadastro")
	message.SetString(lang, "title.dashboard", "Painel")
	message.SetString(lang, "title.users", "Usuários")
	message.SetString(lang, "title.products", "Produtos")
	message.SetString(lang, "title.typography", "Tipografia")
	message.SetString(lang, "title.icons", "Ícones")
	message.SetString(lang, "title.account", "Conta")
	message.SetString(lang, "title.settings", "Configurações")
	message.SetString(lang, "title.not_found", "Não encontrado")

	message.SetString(lang, "shell.loading", "Carregando sua sessão...")
	message.SetString(lang, "dialog.ok", "Ok")

	// Navigation
	message.SetString(lang, "nav.greeting", "Olá, %s")
	message.SetString(lang, "nav.sign_out", "Sair")
	message.SetString(lang, "nav.dashboard", "Painel")
	message.SetString(lang, "nav.users", "Usuários")
	message.SetString(lang, "nav.products", "Produtos")
	message.SetString(lang, "nav.typography", "Tipografia")
	message.SetString(lang, "nav.icons", "Ícones")
	message.SetString(lang, "nav.account", "Conta")
	message.SetString(lang, "nav.settings", "Configurações")

	message.SetString(lang, "dashboard.placeholder", "Esta seção ainda não está disponível.")

	message.SetString(lang, "notfound.heading", "404: A página que você procura não está aqui")
	message.SetString(lang, "notfound.text", "Você tentou uma rota inexistente ou chegou aqui por engano.")
	message.SetString(lang, "notfound.back", "Voltar ao painel")

	// Sign in
	message.SetString(lang, "signin.heading", "Entrar")
	message.SetString(lang, "signin.subheading", "Entre na plataforma interna")
	message.SetString(lang, "signin.google", "Entrar com Google")
	message.SetString(lang, "signin.divider", "ou entre com seu email")
	message.SetString(lang, "signin.email", "Email")
	message.SetString(lang, "signin.password", "Senha")
	message.SetString(lang, "signin.submit", "Entrar agora")
	message.SetString(lang, "signin.no_account", "Não tem uma conta?")
	message.SetString(lang, "signin.sign_up_link", "Cadastre-se")

	// Sign up
	message.SetString(lang, "signup.heading", "Criar nova conta")
	message.SetString(lang, "signup.subheading", "Use seu email para criar uma nova conta")
	message.SetString(lang, "signup.first_name", "Nome")
	message.SetString(lang, "signup.last_name", "Sobrenome")
	message.SetString(lang, "signup.email", "Email")
	message.SetString(lang, "signup.password", "Senha")
	message.SetString(lang, "signup.policy", "Li os Termos e Condições")
	message.SetString(lang, "signup.submit", "Cadastrar agora")
	message.SetString(lang, "signup.have_account", "Já tem uma conta?")
	message.SetString(lang, "signup.sign_in_link", "Entrar")
	message.SetString(lang, "signup.welcome.title", "Bem-vindo, %[1]s!")
	message.SetString(lang, "signup.welcome.text", "Sua conta foi criada. Enviamos um email com um link de confirmação para %[2]s. Para concluir o cadastro, clique no link de confirmação.")

	message.SetString(lang, "signout.done.title", "Sessão encerrada")
	message.SetString(lang, "signout.done.text", "Você saiu da sua conta.")

	// Alerts
	message.SetString(lang, "alert.generic.title", "Ops!")
	message.SetString(lang, "alert.generic.text", "Houve um problema. Tente novamente mais tarde.")
	message.SetString(lang, "alert.email_unavailable.title", "Email indisponível")
	message.SetString(lang, "alert.email_unavailable.text", "Já existe uma conta com este email.")
	message.SetString(lang, "alert.invalid_credentials.title", "Credenciais inválidas")
	message.SetString(lang, "alert.invalid_credentials.text", "O email ou a senha informados estão incorretos.")

	message.SetString(lang, "validation.required", "é obrigatório")
	message.SetString(lang, "validation.too_long", "é muito longo (máximo de %d caracteres)")
	message.SetString(lang, "validation.email", "não é um email válido")
	message.SetString(lang, "validation.policy", "deve ser aceito")
}
